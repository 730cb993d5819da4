package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/xbensieve/room-booking-api/internal/adapters/inbound/workers"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/config"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/imageprobe"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/log"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/pubsub"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/queue"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqldb"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/time"
	"github.com/xbensieve/room-booking-api/internal/persistence"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"github.com/xbensieve/room-booking-api/internal/usecases"
)

// NewBookingApp creates and returns a new instance of the booking application.
// Initializers passed by the caller run first, which lets tests replace any dependency.
func NewBookingApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&InitStorage{},
			&sqldb.InitSessionFactory{},
			&persistence.InitUnitOfWorkFactory{},
			&time.InitCurrentTimeProvider{},
			&queue.InitTaskQueue{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&imageprobe.InitProber{},

			&usecases.InitPublishNotification{},
			&usecases.InitVerifyHotelImages{},
			&usecases.InitCreateHotel{},
			&usecases.InitListHotels{},
			&usecases.InitDeleteHotel{},
			&usecases.InitCreateReservation{},
		).
		Host(
			&workers.BackgroundWorker{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
