package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SickDinner/Uho-sub002/internal/app"
	"github.com/SickDinner/Uho-sub002/internal/audio"
	"github.com/SickDinner/Uho-sub002/internal/source"
	"github.com/SickDinner/Uho-sub002/internal/web"
)

func main() {
	var (
		deviceName = flag.String("audio-device", "", "PortAudio input device name (substring match)")
		wavPath    = flag.String("wav", "", "Play a WAV file instead of capturing audio")
		mp3Path    = flag.String("mp3", "", "Play an MP3 file instead of capturing audio")
		synthetic  = flag.Bool("synthetic", false, "Run with a synthetic audio source (for testing)")
		rate       = flag.Float64("rate", 60, "Analysis rate in Hz")
		targetFPS  = flag.Float64("fps", 60, "Target frames per second")
		window     = flag.Int("window", 2048, "FFT window size (power of two recommended)")
		preset     = flag.String("preset", "pulse", "Style preset (pulse|orbit|strobe)")
		paula      = flag.Bool("paula", false, "Enable 8-bit Paula band shaping")
		workers    = flag.Int("workers", 0, "Worker pool size for parallel target dispatch (0 = sequential)")
		webAddr    = flag.String("web", "", "Serve stats on this address (e.g. :8080)")
		useSDL     = flag.Bool("sdl", false, "Open a scene window (requires building with -tags sdl)")
		debug      = flag.Bool("debug", false, "Enable verbose logging")
		listDevs   = flag.Bool("list-audio-devices", false, "List available audio input devices and exit")
	)

	flag.Parse()

	if *targetFPS <= 0 {
		log.Fatalf("fps must be positive (got %.2f)", *targetFPS)
	}
	if *rate <= 0 {
		log.Fatalf("rate must be positive (got %.2f)", *rate)
	}
	if *window <= 0 {
		log.Fatalf("window must be positive (got %d)", *window)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(os.Stdout, "[audiosync] ", log.LstdFlags)
	if !*debug {
		logger.SetOutput(os.Stderr)
		logger.SetFlags(0)
	}

	needCapture := !*synthetic && *wavPath == "" && *mp3Path == ""
	if needCapture || *listDevs {
		if err := audio.Initialize(); err != nil {
			logger.Fatalf("failed to initialize PortAudio: %v", err)
		}
		defer audio.Terminate()
	}

	if *listDevs {
		devices, err := audio.ListInputDevices()
		if err != nil {
			logger.Fatalf("list devices: %v", err)
		}
		fmt.Printf("\n=== Audio Input Devices ===\n\n")
		for _, dev := range devices {
			markers := ""
			if dev.IsDefaultInput {
				markers = " (default)"
			}
			fmt.Printf("- %s [%s]%s\n    inputs:%d sample:%.0f Hz\n",
				dev.Name, dev.HostAPI, markers, dev.InputChannels, dev.DefaultSampleHz)
		}
		return
	}

	src, label, closer, err := openSource(*synthetic, *deviceName, *wavPath, *mp3Path, *window, logger)
	if err != nil {
		logger.Fatalf("audio source: %v", err)
	}
	if closer != nil {
		defer closer()
	}

	a, err := app.New(app.Config{
		Source:       src,
		SourceLabel:  label,
		AnalysisRate: *rate,
		TargetFPS:    *targetFPS,
		Preset:       *preset,
		PaulaMode:    *paula,
		Workers:      *workers,
		UseSDL:       *useSDL,
		Log:          logger,
	})
	if err != nil {
		logger.Fatalf("failed to create app: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "cleanup error: %v\n", err)
		}
	}()

	if *webAddr != "" {
		server := web.NewServer(a.Engine(), logger)
		go func() {
			if err := server.Start(ctx, *webAddr); err != nil {
				logger.Printf("web server: %v", err)
			}
		}()
	}

	if err := a.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nExiting...")
			return
		}
		logger.Fatalf("runtime error: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
}

// openSource picks the audio source by flag priority: WAV, then MP3,
// then live capture; the synthetic generator is the fallback.
func openSource(synthetic bool, device, wavPath, mp3Path string, window int, logger *log.Logger) (source.Source, string, func(), error) {
	switch {
	case wavPath != "":
		pcm, err := source.LoadWAV(wavPath, window)
		if err != nil {
			return nil, "", nil, fmt.Errorf("load wav: %w", err)
		}
		return pcm, wavPath, nil, nil
	case mp3Path != "":
		pcm, err := source.LoadMP3(mp3Path, window)
		if err != nil {
			return nil, "", nil, fmt.Errorf("load mp3: %w", err)
		}
		return pcm, mp3Path, nil, nil
	case !synthetic && (device != "" || hasCapture()):
		capture, err := audio.NewCapture(audio.Config{
			DeviceName: device,
			Window:     window,
			Channels:   2,
		})
		if err != nil {
			logger.Printf("audio capture unavailable (%v), falling back to synthetic source", err)
			break
		}
		logger.Printf("capturing from \"%s\" @ %.0f Hz", capture.DeviceName(), capture.SampleRate())
		return capture, capture.DeviceName(), func() { _ = capture.Close() }, nil
	}
	return source.NewSynthetic(window/2, 60), "synthetic", nil, nil
}

func hasCapture() bool {
	devices, err := audio.ListInputDevices()
	return err == nil && len(devices) > 0
}
