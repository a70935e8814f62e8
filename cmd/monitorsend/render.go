package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/volki9000/monitorsend/pkg/framework/process"
	"github.com/volki9000/monitorsend/pkg/monitor"
	"github.com/volki9000/monitorsend/pkg/preset"
)

func newRenderCmd() *cobra.Command {
	var (
		outDir    string
		blockSize int
		offline   bool
	)

	cmd := &cobra.Command{
		Use:   "render <input.wav>",
		Short: "Route a stereo WAV through the engine, writing one file per destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mix, err := mixFromFlags(cmd)
			if err != nil {
				return err
			}
			return runRender(args[0], outDir, mix, blockSize, offline)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for the rendered files")
	cmd.Flags().IntVar(&blockSize, "block-size", 512, "samples per processing block")
	cmd.Flags().BoolVar(&offline, "offline", false, "run the engine in offline mode (sends stay silent)")

	return cmd
}

func runRender(inPath, outDir string, mix preset.Mix, blockSize int, offline bool) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	if buf.Format.NumChannels != 2 {
		return fmt.Errorf("%s: need a stereo input, got %d channel(s)",
			inPath, buf.Format.NumChannels)
	}

	sampleRate := buf.Format.SampleRate
	bitDepth := int(dec.BitDepth)
	frames := buf.NumFrames()
	input := deinterleave(buf, bitDepth)

	engine := monitor.NewEngine()
	mix.Apply(engine.Params())

	mode := process.ModeRealtime
	if offline {
		mode = process.ModeOffline
	}
	if err := engine.Initialize(process.Setup{
		SampleRate:   float64(sampleRate),
		MaxBlockSize: int32(blockSize),
		Mode:         mode,
	}); err != nil {
		return err
	}

	mainOut := newStereo(frames)
	sends := make([][][]float32, monitor.NumSends)
	for d := range sends {
		sends[d] = newStereo(frames)
	}

	for off := 0; off < frames; off += blockSize {
		end := min(off+blockSize, frames)

		aux := make([][][]float32, monitor.NumSends)
		for d := range aux {
			aux[d] = [][]float32{sends[d][0][off:end], sends[d][1][off:end]}
		}

		engine.ProcessAudio(&process.Context{
			Input:      [][]float32{input[0][off:end], input[1][off:end]},
			Output:     [][]float32{mainOut[0][off:end], mainOut[1][off:end]},
			Aux:        aux,
			SampleRate: float64(sampleRate),
		})
	}

	names := []string{"main"}
	outputs := [][][]float32{mainOut}
	for s := monitor.Send(0); s < monitor.NumSends; s++ {
		names = append(names, strings.ToLower(s.String()))
		outputs = append(outputs, sends[s])
	}

	for i, name := range names {
		path := filepath.Join(outDir, name+".wav")
		if err := writeWav(path, outputs[i], sampleRate, bitDepth); err != nil {
			return err
		}
		glog.Infof("wrote %s (%d frames, %s mode)", path, frames, mode)
	}

	return nil
}

func newStereo(frames int) [][]float32 {
	return [][]float32{make([]float32, frames), make([]float32, frames)}
}

// deinterleave converts an interleaved PCM buffer to channel-major float32.
func deinterleave(buf *audio.IntBuffer, bitDepth int) [][]float32 {
	frames := buf.NumFrames()
	out := newStereo(frames)
	scale := float32(int64(1) << (bitDepth - 1))

	for i := 0; i < frames; i++ {
		out[0][i] = float32(buf.Data[i*2]) / scale
		out[1][i] = float32(buf.Data[i*2+1]) / scale
	}
	return out
}

// writeWav writes channel-major float32 audio as an interleaved PCM file.
// Samples beyond full scale are clipped at the integer bounds.
func writeWav(path string, channels [][]float32, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), 1)

	frames := len(channels[0])
	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, frames*len(channels)),
	}

	scale := float64(int64(1) << (bitDepth - 1))
	for i := 0; i < frames; i++ {
		for ch := range channels {
			v := float64(channels[ch][i]) * scale
			if v > scale-1 {
				v = scale - 1
			} else if v < -scale {
				v = -scale
			}
			out.Data[i*len(channels)+ch] = int(v)
		}
	}

	if err := enc.Write(out); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close %s: %w", path, err)
	}
	return f.Close()
}
