package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang/glog"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/cobra"

	"github.com/volki9000/monitorsend/pkg/framework/process"
	"github.com/volki9000/monitorsend/pkg/monitor"
	"github.com/volki9000/monitorsend/pkg/preset"
)

func newMonitorCmd() *cobra.Command {
	var (
		sendName   string
		blockSize  int
		sampleRate float64
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Audition one send destination live through the default audio device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mix, err := mixFromFlags(cmd)
			if err != nil {
				return err
			}
			return runMonitor(sendName, mix, sampleRate, blockSize)
		},
	}

	cmd.Flags().StringVar(&sendName, "send", "FOH", "destination to audition (FOH, Axel, Sebi, Volki)")
	cmd.Flags().IntVar(&blockSize, "block-size", 256, "samples per processing block")
	cmd.Flags().Float64Var(&sampleRate, "sample-rate", 48000, "stream sample rate in Hz")

	return cmd
}

func sendByName(name string) (monitor.Send, error) {
	for s := monitor.Send(0); s < monitor.NumSends; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown send %q (have %s)",
		name, strings.Join(monitor.SendNames(), ", "))
}

func runMonitor(sendName string, mix preset.Mix, sampleRate float64, blockSize int) error {
	target, err := sendByName(sendName)
	if err != nil {
		return err
	}

	engine := monitor.NewEngine()
	mix.Apply(engine.Params())
	if err := engine.Initialize(process.Setup{
		SampleRate:   sampleRate,
		MaxBlockSize: int32(blockSize),
		Mode:         process.ModeRealtime,
	}); err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer portaudio.Terminate()

	in := make([]float32, blockSize*2)
	out := make([]float32, blockSize*2)

	stream, err := portaudio.OpenDefaultStream(2, 2, sampleRate, blockSize, in, out)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	ctx := &process.Context{
		Input:      newStereo(blockSize),
		Output:     newStereo(blockSize),
		Aux:        make([][][]float32, monitor.NumSends),
		SampleRate: sampleRate,
	}
	for d := range ctx.Aux {
		ctx.Aux[d] = newStereo(blockSize)
	}

	if err := stream.Start(); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	defer stream.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	glog.Infof("monitoring send %s at %.0f Hz; Ctrl-C to stop", target, sampleRate)

	for {
		select {
		case <-sig:
			glog.Info("stopping")
			return nil
		default:
		}

		if err := stream.Read(); err != nil && err != portaudio.InputOverflowed {
			return fmt.Errorf("read stream: %w", err)
		}

		for i := 0; i < blockSize; i++ {
			ctx.Input[0][i] = in[2*i]
			ctx.Input[1][i] = in[2*i+1]
		}

		engine.ProcessAudio(ctx)

		src := ctx.AuxOutput(int(target))
		for i := 0; i < blockSize; i++ {
			out[2*i] = src[0][i]
			out[2*i+1] = src[1][i]
		}

		if err := stream.Write(); err != nil && err != portaudio.OutputUnderflowed {
			return fmt.Errorf("write stream: %w", err)
		}
	}
}
