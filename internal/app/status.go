package app

import (
	"context"

	"go.trai.ch/zerr"
)

// Status prints the state of the worker for root without starting one.
func (a *App) Status(ctx context.Context, root string, asJSON bool) error {
	p := newPrinter(a.stdout)
	if !a.connector.IsRunning(root) {
		if asJSON {
			return p.json(struct {
				Running bool `json:"running"`
			}{})
		}
		p.notRunning()
		return nil
	}

	client, err := a.connector.Dial(root)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	status, err := client.Status(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to query worker status")
	}
	if asJSON {
		return p.json(status)
	}
	p.status(status)
	return nil
}

// Stop asks the worker for root to shut down.
func (a *App) Stop(ctx context.Context, root string) error {
	if !a.connector.IsRunning(root) {
		a.logger.Info("worker is not running")
		return nil
	}

	client, err := a.connector.Dial(root)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Shutdown(ctx); err != nil {
		return zerr.Wrap(err, "failed to stop worker")
	}
	a.logger.Info("worker stopping")
	return nil
}
