package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
)

// SubscriberFault describes a handler that panicked during a dispatch.
type SubscriberFault struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"-"`
	SubscriptionID uint64    `json:"subscriptionID"`
	Owner          string    `json:"owner,omitempty"`
	Value          any       `json:"-"`
	Stack          string    `json:"stack,omitempty"`
	Time           time.Time `json:"time"`
}

func (f *SubscriberFault) Error() string {
	if f.Owner != "" {
		return fmt.Sprintf("%s subscriber %d (%s) panicked: %v", f.Kind, f.SubscriptionID, f.Owner, f.Value)
	}
	return fmt.Sprintf("%s subscriber %d panicked: %v", f.Kind, f.SubscriptionID, f.Value)
}

// MarshalJSON renders the kind by name and the panic value as text.
func (f *SubscriberFault) MarshalJSON() ([]byte, error) {
	type alias SubscriberFault
	return json.Marshal(struct {
		*alias
		Kind  string `json:"kind"`
		Panic string `json:"panic"`
	}{
		alias: (*alias)(f),
		Kind:  f.Kind.String(),
		Panic: fmt.Sprint(f.Value),
	})
}

// IsSubscriberFault checks if an error is a subscriber fault.
func IsSubscriberFault(err error) bool {
	_, ok := err.(*SubscriberFault)
	return ok
}

// Reporter receives subscriber faults. Report is fire-and-forget and is
// called on the dispatching goroutine.
type Reporter interface {
	Report(fault *SubscriberFault)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(fault *SubscriberFault)

// Report implements Reporter.
func (f ReporterFunc) Report(fault *SubscriberFault) {
	f(fault)
}

// LogReporter writes faults to a zerolog logger.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a reporter that logs faults at error level.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(fault *SubscriberFault) {
	r.logger.Error().
		Str("fault", fault.ID).
		Str("kind", fault.Kind.String()).
		Uint64("subscription", fault.SubscriptionID).
		Str("owner", fault.Owner).
		Interface("panic", fault.Value).
		Str("stack", fault.Stack).
		Msg("event subscriber panicked")
}

// DefaultFaultTopic is the watermill topic fault reports are published to.
const DefaultFaultTopic = "exiled.faults"

// WatermillReporter publishes faults as JSON messages on a watermill topic,
// so diagnostics consumers can pick them up without sitting on the dispatch
// path.
type WatermillReporter struct {
	publisher message.Publisher
	topic     string
	logger    zerolog.Logger
}

// NewWatermillReporter creates a reporter publishing to topic. An empty
// topic selects DefaultFaultTopic.
func NewWatermillReporter(publisher message.Publisher, topic string, logger zerolog.Logger) *WatermillReporter {
	if topic == "" {
		topic = DefaultFaultTopic
	}
	return &WatermillReporter{publisher: publisher, topic: topic, logger: logger}
}

// Topic returns the topic faults are published to.
func (r *WatermillReporter) Topic() string {
	return r.topic
}

// Report implements Reporter.
func (r *WatermillReporter) Report(fault *SubscriberFault) {
	payload, err := json.Marshal(fault)
	if err != nil {
		r.logger.Error().Err(err).Str("fault", fault.ID).Msg("failed to encode fault report")
		return
	}

	msg := message.NewMessage(fault.ID, payload)
	msg.Metadata.Set("kind", fault.Kind.String())
	msg.Metadata.Set("owner", fault.Owner)

	if err := r.publisher.Publish(r.topic, msg); err != nil {
		r.logger.Error().Err(err).Str("fault", fault.ID).Str("topic", r.topic).Msg("failed to publish fault report")
	}
}

// Close closes the underlying publisher.
func (r *WatermillReporter) Close() error {
	return r.publisher.Close()
}

// MultiReporter fans a fault out to several reporters in order.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(fault *SubscriberFault) {
	for _, r := range m {
		r.Report(fault)
	}
}

// Close closes every reporter that is closable and returns the first error.
func (m MultiReporter) Close() error {
	var first error
	for _, r := range m {
		if c, ok := r.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
