// Command server runs the recruitment dashboard API.
package main

import (
	"log"

	"github.com/ryssellou/recruitment-dashboard/internal/server"
)

//	@title			Recruitment Dashboard API
//	@version		1.0
//	@description	Review dashboard for candidates imported from a Google Sheets application form.

//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization

func main() {
	srv := server.NewServer()

	log.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
