package command

import (
	"fmt"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-tileworld/internal/driver"
	"github.com/pixil98/go-tileworld/internal/messaging"
	"github.com/pixil98/go-tileworld/internal/metrics"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewEventPublisher(natsServer)

	m := metrics.New(cfg.Metrics.namespace())

	cnt := cfg.World.buildContent(publisher)
	registry, err := cfg.World.buildRegistry(cnt, m)
	if err != nil {
		return nil, fmt.Errorf("creating collision registry: %w", err)
	}

	w, err := cfg.World.buildWorld(dict, registry, publisher, m)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	// Nothing is published until the bus is up.
	d := driver.NewDriver([]driver.Ticker{w},
		driver.WithTickLength(cfg.tickLength()),
		driver.WithWaitFor(natsServer.Ready()),
	)

	workers := service.WorkerList{
		"nats":   natsServer,
		"driver": d,
	}
	if cfg.Metrics.enabled() {
		workers["metrics"] = cfg.Metrics.buildServer(m.Gatherer())
	}

	return workers, nil
}
