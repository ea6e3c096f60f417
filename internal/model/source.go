// Package model defines the data structures shared by the graph builder,
// its adapters and the user interfaces.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// Target names the language dialect that module code is lowered to.
type Target string

const (
	// TargetES5 lowers as far as the transform backend allows.
	TargetES5 Target = "es5"
	// TargetES2015 is the default dialect.
	TargetES2015 Target = "es2015"
	TargetES2016 Target = "es2016"
	TargetES2017 Target = "es2017"
	TargetES2018 Target = "es2018"
	TargetES2019 Target = "es2019"
	TargetES2020 Target = "es2020"
	TargetES2021 Target = "es2021"
	TargetES2022 Target = "es2022"
	TargetES2023 Target = "es2023"
	TargetES2024 Target = "es2024"
	// TargetESNext keeps syntax untouched and only rewrites module format.
	TargetESNext Target = "esnext"
)

// DefaultTarget is used when no target has been configured.
const DefaultTarget = TargetES2015

// SupportedTargets lists every accepted Target in ascending order.
var SupportedTargets = []Target{
	TargetES5,
	TargetES2015,
	TargetES2016,
	TargetES2017,
	TargetES2018,
	TargetES2019,
	TargetES2020,
	TargetES2021,
	TargetES2022,
	TargetES2023,
	TargetES2024,
	TargetESNext,
}

// ParseTarget normalizes a user supplied dialect name.
// An empty value yields DefaultTarget.
func ParseTarget(value string) (Target, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return DefaultTarget, nil
	}

	for _, target := range SupportedTargets {
		if string(target) == name {
			return target, nil
		}
	}

	return "", fmt.Errorf("unsupported target %q", value)
}
