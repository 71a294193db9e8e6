package server

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/garrettcampbell3/display-library/internal/logging"
	"github.com/garrettcampbell3/display-library/internal/version"
)

const (
	// ServiceType is the mDNS service type spectators browse for
	ServiceType = "_lcdframe._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Announcement advertises a running frame server over mDNS until stopped.
type Announcement struct {
	server *zeroconf.Server
}

// Announce registers the frame server on the local network so spectators
// can discover it without knowing the address.
func Announce(fs *FrameServer) (*Announcement, error) {
	port, err := fs.Port()
	if err != nil {
		return nil, err
	}

	instance, err := os.Hostname()
	if err != nil || instance == "" {
		instance = "lcdnav"
	}

	txt := []string{
		"path=" + FramesPath,
		"version=" + version.Version,
	}

	zcServer, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Announced frame server over mDNS",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return &Announcement{server: zcServer}, nil
}

// Stop withdraws the mDNS registration.
func (a *Announcement) Stop() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}
