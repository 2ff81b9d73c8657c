package registry

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

// Issue is a single problem found in a registry Set.
type Issue struct {
	Severity errors.ErrorSeverity
	Symbol   string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Symbol, i.Message)
}

// Issues is the result of Validate.
type Issues []Issue

// Errors returns only issues that must fail a build.
func (is Issues) Errors() Issues {
	var out Issues
	for _, i := range is {
		if i.Severity != errors.SeverityWarning {
			out = append(out, i)
		}
	}
	return out
}

// Warnings returns issues that are reported but tolerated.
func (is Issues) Warnings() Issues {
	var out Issues
	for _, i := range is {
		if i.Severity == errors.SeverityWarning {
			out = append(out, i)
		}
	}
	return out
}

// Err folds blocking issues into one validation error, or returns nil.
func (is Issues) Err() error {
	errs := is.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Symbol + ": " + e.Message
	}
	b := errors.ValidationError("registry validation failed: " + strings.Join(lines, "; ")).
		WithContext("issues", len(errs))
	if len(errs) == 1 {
		b = b.WithContext("symbol", errs[0].Symbol)
	}
	return b.Build()
}

// ValidateOptions tune which findings block a build.
type ValidateOptions struct {
	// AllowUnmatchedTokens downgrades tokens without a synth to warnings.
	AllowUnmatchedTokens bool
}

// Validate checks referential integrity and record shape of a Set.
func Validate(set *Set, opts ValidateOptions) Issues {
	var issues Issues
	add := func(sev errors.ErrorSeverity, symbol, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Symbol: symbol, Message: fmt.Sprintf(format, args...)})
	}

	if set.Operator != "" && !common.IsHexAddress(set.Operator) {
		add(errors.SeverityError, "oracle", "operator address %q is not a valid address", set.Operator)
	}

	synths := make(map[string]Synth, len(set.Synths))
	for _, s := range set.Synths {
		if s.Name == "" {
			add(errors.SeverityError, "?", "synth without a name")
			continue
		}
		if _, dup := synths[s.Name]; dup {
			add(errors.SeverityError, s.Name, "duplicate synth")
		}
		synths[s.Name] = s
	}

	seen := make(map[string]bool, len(set.Tokens))
	for _, t := range set.Tokens {
		if seen[t.Symbol] {
			add(errors.SeverityError, t.Symbol, "duplicate token")
		}
		seen[t.Symbol] = true
		if !common.IsHexAddress(t.Address) {
			add(errors.SeverityError, t.Symbol, "contract address %q is not a valid address", t.Address)
		}
		if t.Decimals < 0 {
			add(errors.SeverityError, t.Symbol, "negative decimals %d", t.Decimals)
		}
		if _, ok := synths[t.Symbol]; !ok {
			sev := errors.SeverityError
			if opts.AllowUnmatchedTokens {
				sev = errors.SeverityWarning
			}
			add(sev, t.Symbol, "token has no matching synth")
		}
	}

	for _, s := range set.Synths {
		if s.Name == "" {
			continue
		}
		if !seen[s.Name] {
			add(errors.SeverityWarning, s.Name, "synth has no token and will not be documented")
		}
		if s.Feed != "" && !common.IsHexAddress(s.Feed) {
			add(errors.SeverityError, s.Name, "feed address %q is not a valid address", s.Feed)
		}
		if inv := s.Inverted; inv != nil {
			if !inv.LowerLimit.LessThan(inv.EntryPoint) || !inv.EntryPoint.LessThan(inv.UpperLimit) {
				add(errors.SeverityWarning, s.Name, "inverted limits not ordered lower < entry < upper (%s, %s, %s)",
					inv.LowerLimit, inv.EntryPoint, inv.UpperLimit)
			}
		}
		for _, c := range s.Index {
			if strings.TrimSpace(c.Symbol) == "" {
				add(errors.SeverityError, s.Name, "index component without a symbol")
				continue
			}
			if !c.Units.IsPositive() {
				add(errors.SeverityWarning, s.Name, "index component %s has non-positive units %s", c.Symbol, c.Units)
			}
		}
	}

	return issues
}
