package client

import (
	"context"
	"io"
)

// Player plays an audio stream to the speaker.
type Player interface {
	Play(ctx context.Context, audio io.Reader) error
}

// Narrator speaks text by fetching narration from the API and playing it.
type Narrator struct {
	client *Client
	player Player
}

// NewNarrator creates a Narrator.
func NewNarrator(c *Client, p Player) *Narrator {
	return &Narrator{client: c, player: p}
}

// Narrate blocks until playback ends or ctx is cancelled.
func (n *Narrator) Narrate(ctx context.Context, text, voiceID string) error {
	body, err := n.client.Synthesize(ctx, text, voiceID)
	if err != nil {
		return err
	}
	defer body.Close()
	return n.player.Play(ctx, body)
}
