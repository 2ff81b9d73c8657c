package registry

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

// Source provides registry records for one network.
type Source interface {
	ListTokens(ctx context.Context) ([]Token, error)
	ListSynths(ctx context.Context) ([]Synth, error)
	OperatorAddress(ctx context.Context, role string) (string, error)
}

// Load queries every collection from src into a Set.
func Load(ctx context.Context, src Source, network, role string) (*Set, error) {
	tokens, err := src.ListTokens(ctx)
	if err != nil {
		return nil, err
	}
	synths, err := src.ListSynths(ctx)
	if err != nil {
		return nil, err
	}
	operator, err := src.OperatorAddress(ctx, role)
	if err != nil {
		return nil, err
	}
	return &Set{Network: network, Tokens: tokens, Synths: synths, Operator: operator}, nil
}

type networkData struct {
	Tokens []Token `yaml:"tokens"`
	Synths []Synth `yaml:"synths"`
	Users  []User  `yaml:"users"`
}

type fileLayout struct {
	Networks map[string]networkData `yaml:"networks"`
}

// FileSource serves registry records from a YAML or JSON file.
type FileSource struct {
	path    string
	network string
	data    networkData
}

// OpenFile reads and parses the registry file, selecting one network.
func OpenFile(path, network string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRegistry, "read registry file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return parseFile(raw, path, network)
}

func parseFile(raw []byte, path, network string) (*FileSource, error) {
	var layout fileLayout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRegistry, "parse registry file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	data, ok := layout.Networks[network]
	if !ok {
		return nil, errors.RegistryError("network not present in registry").
			WithContext("path", path).
			WithContext("network", network).
			Build()
	}
	return &FileSource{path: path, network: network, data: data}, nil
}

func (f *FileSource) ListTokens(ctx context.Context) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.data.Tokens), nil
}

func (f *FileSource) ListSynths(ctx context.Context) ([]Synth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.data.Synths), nil
}

func (f *FileSource) OperatorAddress(ctx context.Context, role string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return userAddress(f.data.Users, role, f.network)
}

// Static is an in-memory Source, used for fixtures and tests.
type Static struct {
	Network string
	Tokens  []Token
	Synths  []Synth
	Users   []User
}

func (s *Static) ListTokens(context.Context) ([]Token, error) { return slices.Clone(s.Tokens), nil }
func (s *Static) ListSynths(context.Context) ([]Synth, error) { return slices.Clone(s.Synths), nil }

func (s *Static) OperatorAddress(_ context.Context, role string) (string, error) {
	return userAddress(s.Users, role, s.Network)
}

func userAddress(users []User, role, network string) (string, error) {
	for _, u := range users {
		if u.Name == role {
			return u.Address, nil
		}
	}
	return "", errors.RegistryError(fmt.Sprintf("no user with role %q", role)).
		WithContext("network", network).
		Build()
}
