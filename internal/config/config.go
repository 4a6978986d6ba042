package config

import (
	"os"
)

type Config struct {
	Port          string
	ProvisionFile string
	ATMID         string
	Location      string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the standard demo machine; override per deployment.
	env := Config{
		Port:          "9446",
		ProvisionFile: "",
		ATMID:         "ATM-001",
		Location:      "123 Main Street, City Center",
	}

	envPort := os.Getenv("ATM_PORT")
	envProvisionFile := os.Getenv("ATM_PROVISION_FILE")
	envATMID := os.Getenv("ATM_ID")
	envLocation := os.Getenv("ATM_LOCATION")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envProvisionFile) != 0 {
		env.ProvisionFile = envProvisionFile
	}

	if len(envATMID) != 0 {
		env.ATMID = envATMID
	}

	if len(envLocation) != 0 {
		env.Location = envLocation
	}

	return &env, nil
}
