package content

import (
	"log/slog"

	"github.com/pixil98/go-tileworld/internal/display"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/hittr"
)

// DialogData is what dialog templates are expanded with.
type DialogData struct {
	Speaker  *game.Thing
	Listener *game.Thing
}

// dialog makes other speak its dialog setting to thing. Each pair talks
// once per compiled type, so standing next to someone does not repeat it.
func (c *Content) dialog() hittr.HitCallback {
	spoken := map[[2]string]bool{}

	return func(thing, other *game.Thing) {
		var tmpl string
		found, err := other.Settings.Get(DialogSetting, &tmpl)
		if err != nil {
			slog.Warn("invalid dialog setting", "type", other.Type, "error", err)
			return
		}
		if !found || tmpl == "" {
			return
		}

		key := [2]string{thing.ID, other.ID}
		if spoken[key] {
			return
		}
		spoken[key] = true

		text, err := display.ExpandTemplate(tmpl, DialogData{Speaker: other, Listener: thing})
		if err != nil {
			slog.Warn("failed to expand dialog", "type", other.Type, "error", err)
			return
		}

		event := game.DialogEvent{
			Speaker:     other.ID,
			SpeakerType: other.Type,
			Listener:    thing.ID,
			Text:        display.Wrap(display.Capitalize(text), c.dialogWidth),
		}

		slog.Info("dialog", "speaker", other.Type, "listener", thing.Type)

		if c.publisher == nil {
			return
		}
		if err := c.publisher.PublishEvent("dialog."+other.Type, event); err != nil {
			slog.Warn("failed to publish dialog", "speaker", other.Type, "error", err)
		}
	}
}
