package session

import "github.com/vovakirdan/pokeplaza/internal/audio"

// director picks the background music for the current phase and chains
// the two game tracks during play.
type director struct {
	sink   audio.Sink
	track  audio.Handle
	inMenu bool
	inGame bool
}

func newDirector(sink audio.Sink) *director {
	return &director{sink: sink}
}

func (d *director) menu() {
	if d.inGame {
		d.sink.Stop(d.track)
		d.inGame = false
	}
	if !d.inMenu {
		d.sink.Loop(audio.MenuTheme)
		d.inMenu = true
	}
}

func (d *director) game() {
	if d.inMenu {
		d.sink.Stop(audio.MenuTheme)
		d.inMenu = false
	}
	if d.inGame {
		d.sink.Stop(d.track)
	}
	d.track = audio.GameTrack1
	d.sink.Play(d.track)
	d.inGame = true
}

// tick starts the other game track once the current one has ended.
func (d *director) tick() {
	if !d.inGame || d.sink.Playing(d.track) {
		return
	}
	if d.track == audio.GameTrack1 {
		d.track = audio.GameTrack2
	} else {
		d.track = audio.GameTrack1
	}
	d.sink.Play(d.track)
}

func (d *director) pause() {
	if d.inGame {
		d.sink.Pause(d.track)
	}
}

func (d *director) resume() {
	if d.inGame {
		d.sink.Resume(d.track)
	}
}

func (d *director) stop() {
	if d.inMenu {
		d.sink.Stop(audio.MenuTheme)
		d.inMenu = false
	}
	if d.inGame {
		d.sink.Stop(d.track)
		d.inGame = false
	}
}
