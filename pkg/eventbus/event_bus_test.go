package eventbus_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/telvana/tsr-tracker/pkg/eventbus"
)

type created struct {
	ID int
}

type updated struct {
	ID int
}

func newBus() eventbus.EventBus {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return eventbus.NewEventPublisher(logger)
}

func TestPublish_DeliversToMatchingHandler(t *testing.T) {
	bus := newBus()

	var got []created
	bus.Subscribe(func(e created) {
		got = append(got, e)
	})
	bus.Publish(created{ID: 1})
	bus.Publish(updated{ID: 2})

	assert.Equal(t, []created{{ID: 1}}, got)
}

func TestUnsubscribe(t *testing.T) {
	bus := newBus()

	calls := 0
	handler := func(e created) { calls++ }
	bus.Subscribe(handler)
	assert.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())
	bus.Publish(created{ID: 1})
	assert.Zero(t, calls)
}

func TestClear(t *testing.T) {
	bus := newBus()
	bus.Subscribe(func(e created) {})
	bus.Subscribe(func(e updated) {})
	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}

func TestPublish_RecoversFromPanickingHandler(t *testing.T) {
	bus := newBus()

	delivered := false
	bus.Subscribe(func(e created) { panic("handler failure") })
	bus.Subscribe(func(e created) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(created{ID: 1})
	})
	assert.True(t, delivered)
}
