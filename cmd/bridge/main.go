// Command bridge runs the IHMC interface bridge: it aggregates controller
// output (pelvis transform, joint commands, controlled links, status) and
// streams whole-body trajectory and go-home messages to the humanoid
// controller input topics.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-valkyrie/internal/config"
	"github.com/teslashibe/go-valkyrie/internal/log"
	"github.com/teslashibe/go-valkyrie/pkg/bridge"
	"github.com/teslashibe/go-valkyrie/pkg/transport"
	"github.com/teslashibe/go-valkyrie/pkg/web"
)

func main() {
	cfg := config.Load()
	log.Init(cfg.LogLevel, cfg.LogFormat)

	streaming := cfg.CommandsFromControllers
	agg := bridge.NewAggregator(streaming, streaming)
	status := bridge.NewStatusController(agg)

	client, err := transport.NewClient(cfg, agg, status)
	if err != nil {
		log.Error("failed to connect transport", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect()

	driver := bridge.NewDriver(agg, status, client, streaming, cfg.PublishRate)

	var server *web.Server
	if cfg.StatusAddr != "" {
		server = web.NewServer(cfg.StatusAddr, streaming, agg, status, driver)
		go func() {
			if err := server.Start(); err != nil {
				log.Error("status server stopped", "error", err)
			}
		}()
	}

	// Stop the driver on SIGINT/SIGTERM; one-shot mode returns on its own
	// after the single publish.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		driver.Stop()
	}()

	if streaming {
		log.Info("bridge started, waiting for controller status")
	} else {
		log.Info("bridge started, waiting for joint commands")
	}

	driver.Run()

	// In one-shot mode Run returns right after the publish; give the
	// async MQTT send time to flush before disconnecting.
	if !streaming {
		time.Sleep(3 * time.Second)
	}

	if server != nil {
		_ = server.Shutdown()
	}
}
