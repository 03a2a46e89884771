package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const toneRate = beep.SampleRate(44100)

// killTone plays a short beep whenever an enemy dies.
type killTone struct {
	ready bool
}

func (k *killTone) init() error {
	if err := speaker.Init(toneRate, toneRate.N(time.Second/10)); err != nil {
		return err
	}
	k.ready = true
	return nil
}

func (k *killTone) play() {
	if !k.ready {
		return
	}
	sine, err := generators.SineTone(toneRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(toneRate.N(50*time.Millisecond), sine))
}

func (k *killTone) close() {
	if k.ready {
		speaker.Close()
	}
}
