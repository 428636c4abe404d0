// Package common holds helpers shared by the dit commands.
package common

import "github.com/GiGurra/boa/pkg/boa"

const appName = "dit"

// DefaultParamEnricher derives flag names, short flags and bool defaults from
// the Params struct fields.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
