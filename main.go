package main

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/api"
	"github.com/carson-networks/atm-server/internal/atm"
	"github.com/carson-networks/atm-server/internal/bank"
	"github.com/carson-networks/atm-server/internal/cash"
	"github.com/carson-networks/atm-server/internal/config"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/receipt"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("atm-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	provision, err := config.LoadProvision(envConfig.ProvisionFile)
	if err != nil {
		logrus.WithError(err).Fatal("config.LoadProvision")
		return
	}

	directory := bank.NewDirectory()
	for _, entry := range provision.Accounts {
		balance, err := decimal.NewFromString(entry.Balance)
		if err != nil {
			logrus.WithError(err).WithField("account", entry.ID).Fatal("config.LoadProvision.BadBalance")
			return
		}
		directory.AddAccount(bank.NewAccount(entry.ID, entry.Holder, balance, entry.PIN))
	}
	for _, entry := range provision.Cards {
		cardType, err := bank.ParseCardType(entry.Type)
		if err != nil {
			logrus.WithError(err).WithField("card", entry.Number).Fatal("config.LoadProvision.BadCardType")
			return
		}
		directory.AddCard(&bank.Card{
			Number:     entry.Number,
			HolderName: entry.Holder,
			Type:       cardType,
			ExpiresAt:  entry.ExpiresAt,
			AccountID:  entry.AccountID,
		})
	}
	inventory := cash.NewInventory(provision.Cash)

	spool := receipt.NewSpool(os.Stdout, logger, 1)
	spool.Start()
	defer spool.Stop()

	session := atm.NewSession(atm.SessionConfig{
		ATMID:     envConfig.ATMID,
		Location:  envConfig.Location,
		Directory: directory,
		Inventory: inventory,
		Presenter: spool,
		Logger:    logger,
	})

	logger.WithFields(logrus.Fields{
		"atmId":      envConfig.ATMID,
		"cashOnHand": inventory.TotalValue().StringFixed(2),
	}).Info("ATM.Ready")

	httpRest := api.Rest{
		Logger:    logger,
		Port:      envConfig.Port,
		Session:   session,
		Directory: directory,
		Inventory: inventory,
	}
	httpRest.Serve()
}
