package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/starklab/starkgo"
	"github.com/starklab/starkgo/codec"
	"github.com/starklab/starkgo/state"
)

// storeOptions builds the Molecule options shared by all subcommands from
// the persistent flags and viper config.
func storeOptions(readOnly bool) ([]starkgo.Option, error) {
	var opts []starkgo.Option

	if name := viper.GetString("codec"); name != "" {
		c, ok := codec.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown codec %q", name)
		}
		opts = append(opts, starkgo.WithCodec(c))
	}
	if viper.GetBool("verbose") {
		opts = append(opts, starkgo.WithLogger(starkgo.NewTextLogger(slog.LevelDebug)))
	}
	if readOnly {
		opts = append(opts, starkgo.WithReadOnly())
	}
	return opts, nil
}

func storePath() (string, error) {
	path := viper.GetString("store")
	if path == "" {
		return "", fmt.Errorf("no storage file given (--store flag, STARK_STORE or config)")
	}
	return path, nil
}

func openMolecule(readOnly bool) (*starkgo.Molecule, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	opts, err := storeOptions(readOnly)
	if err != nil {
		return nil, err
	}
	return starkgo.Open(path, opts...)
}

// parseState reads a state from five positional arguments: J Ka Kc M isomer.
func parseState(args []string) (state.State, error) {
	if len(args) != 5 {
		return state.State{}, fmt.Errorf("expected 5 arguments (J Ka Kc M isomer), got %d", len(args))
	}
	vals := make([]int, 5)
	for i, arg := range args {
		if _, err := fmt.Sscanf(arg, "%d", &vals[i]); err != nil {
			return state.State{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
	}
	return state.New(vals[0], vals[1], vals[2], vals[3], vals[4])
}
