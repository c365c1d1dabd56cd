package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/app"
	"github.com/kosmi-edu/kosmi/internal/audio"
	"github.com/kosmi-edu/kosmi/internal/client"
	engine "github.com/kosmi-edu/kosmi/internal/lesson"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/screens/browse"
	"github.com/kosmi-edu/kosmi/internal/screens/lesson"
	"github.com/kosmi-edu/kosmi/internal/screens/notice"
	"github.com/kosmi-edu/kosmi/internal/screens/points"
	"github.com/kosmi-edu/kosmi/internal/speech"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the terminal lesson player",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("api", "", "Kosmi API base URL (overrides KOSMI_API_URL)")
	playCmd.Flags().String("token", "", "Student bearer token (overrides KOSMI_TOKEN)")
	playCmd.Flags().String("lesson", "", "Open this lesson directly instead of the world list")
	playCmd.Flags().Bool("mute", false, "Disable narration and dictation")
	playCmd.Flags().String("log-file", "", "Write logs to this file (the player owns the terminal)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := clientConfig(cmd)
	lessonID, _ := cmd.Flags().GetString("lesson")
	mute, _ := cmd.Flags().GetBool("mute")

	log := logger.Nop()
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		l, err := logger.New(logger.Options{Mode: "prod", Level: "debug", Output: path})
		if err != nil {
			return err
		}
		defer l.Sync()
		log = l
	}

	if cfg.Token == "" {
		return app.Run(notice.Login())
	}

	c := client.New(cfg.APIURL, cfg.Token, &http.Client{Timeout: cfg.Timeout}, log)

	if _, err := c.Me(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return app.Run(notice.Login())
		}
		return fmt.Errorf("reach kosmi api at %s: %w", cfg.APIURL, err)
	}

	ports := engine.Ports{
		Companion: c,
		Ledger:    c,
		Completer: c,
	}
	var recorder lesson.Recorder
	if !mute {
		player := &audio.Player{Command: audio.ParseCommand(orDefault(cfg.PlayCommand, audio.DefaultPlayCommand))}
		ports.Narrator = client.NewNarrator(c, player)
		ports.Transcriber = c
		recorder = &audio.Recorder{
			Command:  audio.ParseCommand(orDefault(cfg.RecordCommand, audio.DefaultRecordCommand)),
			MaxBytes: speech.MaxAudioBytes,
		}
	}

	open := func(id string) screen.Screen {
		return lesson.New(lesson.Deps{Loader: c, Ports: ports, Recorder: recorder, Log: log}, id)
	}

	if lessonID != "" {
		return app.Run(open(lessonID))
	}
	return app.Run(browse.New(c, open).WithPoints(func() screen.Screen { return points.New(c) }))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
