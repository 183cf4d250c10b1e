package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to; the timeouts bound how long a single
// request may take to arrive and to be answered.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout limits reading the full request, body included.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// WriteTimeout limits writing the response.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}
