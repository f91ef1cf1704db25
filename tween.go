package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/ungerik/go3d/vec2"
)

const slideSeconds = 0.12

type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// slide moves s from wherever it is drawn now to to. A slide still running
// for s is dropped.
func (c *Client) slide(s *Sprite, to vec2.T) {
	if s.tween != nil {
		delete(c.Tweens, s.tween)
	}
	from := s.pos
	t := gween.New(0, 1, slideSeconds, ease.OutQuad)
	action := Action{onChange: func(v float32) {
		s.pos = vec2.Interpolate(&from, &to, v)
	}}
	action.addOnFinish(func() {
		s.pos = to
		s.tween = nil
	})
	s.tween = t
	c.Tweens[t] = action
}

func (c *Client) jump(s *Sprite, to vec2.T) {
	if s.tween != nil {
		delete(c.Tweens, s.tween)
		s.tween = nil
	}
	s.pos = to
}

func (c *Client) updateTweens(dt float32) {
	for t, a := range c.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(c.Tweens, t)
		}
	}
}
