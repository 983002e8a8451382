//go:build tools
// +build tools

package changelog

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
