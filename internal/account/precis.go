package account

import (
	"github.com/spf13/viper"
	"golang.org/x/text/secure/precis"
)

const DisablePrecisKey = "security.disable_precis"

func cleanCredential(input string) (string, error) {
	// escape hatch for accounts whose credentials were set before precis processing existed
	if viper.GetBool(DisablePrecisKey) {
		return input, nil
	}
	return precis.OpaqueString.String(input)
}
