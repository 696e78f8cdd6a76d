package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/samnmy/portfolio/audio"
	"github.com/samnmy/portfolio/config"
	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/contact"
	"github.com/samnmy/portfolio/core"
	"github.com/samnmy/portfolio/engine"
	"github.com/samnmy/portfolio/i18n"
)

var (
	debug      bool
	configFile string
	language   string
	mute       bool
	fps        int
	volume     int

	// send
	fromName  string
	fromEmail string
	message   string

	// click
	clickCount    int
	clickInterval time.Duration
)

// clickTail lets the last voice ring out before the device closes
const clickTail = 60 * time.Millisecond

// main registers the commands and runs the interactive page when no subcommand is given
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "interactive terminal portfolio",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPage,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to "+logDir)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "language: en or es (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "disable click sounds")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "frame rate (overrides config)")
	rootCmd.PersistentFlags().IntVar(&volume, "volume", -1, "click volume 0-100 (overrides PORTFOLIO_MASTER_VOLUME)")

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "send a contact message through the email relay",
		Args:  cobra.NoArgs,
		RunE:  runSend,
	}
	sendCmd.Flags().StringVar(&fromName, "name", "", "sender name")
	sendCmd.Flags().StringVar(&fromEmail, "email", "", "sender email")
	sendCmd.Flags().StringVar(&message, "message", "", "message body")

	clickCmd := &cobra.Command{
		Use:   "click",
		Short: "play synthesized key clicks",
		Args:  cobra.NoArgs,
		RunE:  runClick,
	}
	clickCmd.Flags().IntVar(&clickCount, "count", 5, "number of clicks")
	clickCmd.Flags().DurationVar(&clickInterval, "interval", 150*time.Millisecond, "time between clicks")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(sendCmd, clickCmd, initCmd)
	return rootCmd
}

// loadSettings resolves .env, the config file and flag overrides
func loadSettings() (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if language != "" {
		cfg.Locale = language
	}
	if fps != 0 {
		cfg.FPS = fps
	}
	if mute {
		cfg.Muted = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSynth(cfg *config.Config, logger *zap.Logger) *audio.Synth {
	audioCfg := audio.LoadAudioConfig()
	if cfg.Muted {
		audioCfg.Enabled = false
	}
	ctx := audio.NewContext(beep.SampleRate(audioCfg.SampleRate), audio.NewSpeakerOutput)
	synth := audio.NewSynth(ctx, audioCfg, logger)
	if volume >= 0 {
		synth.SetVolume(float64(volume) / 100)
	}
	return synth
}

func runPage(cmd *cobra.Command, args []string) error {
	logger, logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	lang, err := i18n.ParseLanguage(cfg.Locale)
	if err != nil {
		return err
	}
	tr := i18n.NewTranslator(i18n.DefaultCatalog(), lang)

	synth := newSynth(cfg, logger)
	defer synth.Close()

	client := contact.NewClient(contact.LoadConfig(), nil, logger)
	form := contact.NewForm(client, logger, contact.WithOnChange(func(s contact.Status) {
		logger.Debug("contact status", zap.Stringer("status", s))
	}))
	defer form.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewPausableClock(engine.SystemClock{})
	app := NewApp(ctx, screen, cfg, tr, synth, form, logger, clock.Now())
	app.SetMotionClock(clock)

	loop := engine.NewFrameLoop(time.Second/time.Duration(cfg.FPS), clock, app.Frame)
	loop.Start(ctx)
	defer loop.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	logger.Info("page started", zap.Int("fps", cfg.FPS), zap.String("language", cfg.Locale))
	return pumpEvents(ctx, loop, app, clock, events)
}

// pumpEvents hands each terminal event to the frame loop goroutine and waits for its verdict
func pumpEvents(ctx context.Context, loop *engine.FrameLoop, app *App, clock engine.Clock, events <-chan tcell.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			keep := make(chan bool, 1)
			if !loop.Post(func() { keep <- app.HandleEvent(ev, clock.Now()) }) {
				return nil
			}
			select {
			case k := <-keep:
				if !k {
					return nil
				}
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	logger, logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	if err := config.LoadEnv(); err != nil {
		return err
	}
	client := contact.NewClient(contact.LoadConfig(), nil, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.ContactRequestTimeout)
	defer cancel()

	msg := contact.Message{Name: fromName, Email: fromEmail, Message: message}
	if err := client.Send(ctx, msg); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "message sent")
	return nil
}

func runClick(cmd *cobra.Command, args []string) error {
	logger, logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	synth := newSynth(cfg, logger)
	defer synth.Close()

	for i := 0; i < clickCount; i++ {
		synth.PlayClick()
		time.Sleep(clickInterval)
	}
	time.Sleep(clickTail)

	played, dropped := synth.GetStats()
	fmt.Fprintf(cmd.OutOrStdout(), "played %d, dropped %d\n", played, dropped)
	return nil
}
