// Command monitorsend drives the monitoring send engine outside a plugin
// host: it renders a stereo WAV to one file per destination, or auditions
// a send live through the default audio device.
package main

import (
	goflag "flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/volki9000/monitorsend/pkg/preset"
)

var (
	presetPath string
	fohDB      float64
	axelDB     float64
	sebiDB     float64
	volkiDB    float64
)

func main() {
	root := &cobra.Command{
		Use:          "monitorsend",
		Short:        "Stereo monitoring send: one input, four independently gained destinations",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&presetPath, "preset", "", "YAML mix preset with per-send levels in dB")
	root.PersistentFlags().Float64Var(&fohDB, "foh", 0, "FOH send level in dB")
	root.PersistentFlags().Float64Var(&axelDB, "axel", 0, "Axel send level in dB")
	root.PersistentFlags().Float64Var(&sebiDB, "sebi", 0, "Sebi send level in dB")
	root.PersistentFlags().Float64Var(&volkiDB, "volki", 0, "Volki send level in dB")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	// glog complains about logging before flag.Parse otherwise; cobra
	// owns the real argument parsing.
	_ = goflag.CommandLine.Parse(nil)

	root.AddCommand(newRenderCmd(), newMonitorCmd())

	defer glog.Flush()
	if err := root.Execute(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}

// mixFromFlags resolves the send levels: preset file first, then any
// per-send flag the user set explicitly on top.
func mixFromFlags(cmd *cobra.Command) (preset.Mix, error) {
	mix := preset.Default()

	if presetPath != "" {
		m, err := preset.Load(presetPath)
		if err != nil {
			return preset.Mix{}, err
		}
		mix = m
	}

	if cmd.Flag("foh").Changed {
		mix.FOH = fohDB
	}
	if cmd.Flag("axel").Changed {
		mix.Axel = axelDB
	}
	if cmd.Flag("sebi").Changed {
		mix.Sebi = sebiDB
	}
	if cmd.Flag("volki").Changed {
		mix.Volki = volkiDB
	}

	return mix, nil
}
