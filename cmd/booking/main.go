package main

import "github.com/xbensieve/room-booking-api/internal/app"

func main() {
	err := app.NewBookingApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
