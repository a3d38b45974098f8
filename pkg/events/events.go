package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoutingCVAnalyzed is the routing key of CVAnalyzed messages.
const RoutingCVAnalyzed = "cv.analyzed"

// Publisher delivers domain events to a broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// CVAnalyzed is emitted after an uploaded CV has been scored against the offers.
type CVAnalyzed struct {
	UploadID     uuid.UUID `json:"uploadId"`
	Filename     string    `json:"filename"`
	Pages        int       `json:"pages"`
	Skills       []string  `json:"skills"`
	TotalMatches int       `json:"totalMatches"`
	AnalyzedAt   time.Time `json:"analyzedAt"`
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
