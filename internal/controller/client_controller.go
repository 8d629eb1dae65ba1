package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/notify"
	"invoicedesk/internal/port"
	"invoicedesk/internal/validator"
)

// ClientController owns the in-memory client list, its free-text filter
// and the client form.
type ClientController struct {
	api      port.ClientAPI
	notifier *notify.Notifier
	log      zerolog.Logger

	state    State
	clients  []domain.Client
	query    string
	filtered []domain.Client

	Form   *validator.ClientForm
	editID string
}

// NewClientController creates a controller in the Loading state; call
// Load to populate it.
func NewClientController(api port.ClientAPI, notifier *notify.Notifier) *ClientController {
	return &ClientController{
		api:      api,
		notifier: notifier,
		log:      logger.WithComponent("clients"),
		state:    StateLoading,
		Form:     validator.NewClientForm(),
	}
}

// State returns the controller lifecycle state.
func (c *ClientController) State() State { return c.state }

// Busy reports whether a mutation is in flight. Advisory only.
func (c *ClientController) Busy() bool { return c.state == StateMutating }

// Clients returns the full in-memory list.
func (c *ClientController) Clients() []domain.Client { return c.clients }

// Load fetches the client list from the backend.
func (c *ClientController) Load(ctx context.Context) error {
	c.state = StateLoading
	defer func() { c.state = StateReady }()

	clients, err := c.api.ListClients(ctx)
	if err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	c.clients = clients
	c.refilter()
	c.log.Debug().Int("count", len(clients)).Msg("client list loaded")
	return nil
}

// Create validates the form and creates a client. Validation failures
// reject the submission before any network call is issued. On success
// the list is reloaded and the form reset to create-mode defaults.
func (c *ClientController) Create(ctx context.Context) error {
	if !c.Form.Errors().Valid() {
		return domain.ErrValidationFailed
	}
	return c.mutate(ctx, func(ctx context.Context) error {
		draft := c.Form.Values
		created, err := c.api.CreateClient(ctx, &draft)
		if err != nil {
			return err
		}
		c.notifier.Success("client " + created.Name + " created")
		c.Form.Reset()
		return nil
	})
}

// BeginEdit loads an existing client into the form and switches the
// submit mode to update.
func (c *ClientController) BeginEdit(id string) bool {
	for _, client := range c.clients {
		if client.ID == id {
			c.Form.Load(client)
			c.editID = id
			return true
		}
	}
	return false
}

// CancelEdit leaves edit mode explicitly and clears the form.
func (c *ClientController) CancelEdit() {
	c.editID = ""
	c.Form.Reset()
}

// Editing reports the id under edit, if any.
func (c *ClientController) Editing() (string, bool) {
	return c.editID, c.editID != ""
}

// Update validates the form and updates the client under edit. The form
// stays populated; edit mode is exited explicitly via CancelEdit.
func (c *ClientController) Update(ctx context.Context) error {
	if c.editID == "" {
		return domain.ErrNotFound
	}
	if !c.Form.Errors().Valid() {
		return domain.ErrValidationFailed
	}
	return c.mutate(ctx, func(ctx context.Context) error {
		draft := c.Form.Values
		updated, err := c.api.UpdateClient(ctx, c.editID, &draft)
		if err != nil {
			return err
		}
		c.notifier.Success("client " + updated.Name + " updated")
		return nil
	})
}

// Delete removes a client by id. The backend refuses when the client
// still has invoices; the message is surfaced as-is.
func (c *ClientController) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		if err := c.api.DeleteClient(ctx, id); err != nil {
			return err
		}
		c.notifier.Success("client deleted")
		return nil
	})
}

// SetQuery updates the free-text filter and recomputes the filtered view.
func (c *ClientController) SetQuery(query string) {
	c.query = query
	c.refilter()
}

// Query returns the current filter text.
func (c *ClientController) Query() string { return c.query }

// Filtered returns the clients matching the current query.
func (c *ClientController) Filtered() []domain.Client {
	return c.filtered
}

// Lookup resolves a client by id, for render-time resolution of the
// weak references invoices hold.
func (c *ClientController) Lookup(id string) (*domain.Client, bool) {
	for i := range c.clients {
		if c.clients[i].ID == id {
			return &c.clients[i], true
		}
	}
	return nil, false
}

// mutate runs a mutation inside the Mutating state and reloads the list
// on success before reporting completion.
func (c *ClientController) mutate(ctx context.Context, op func(context.Context) error) error {
	c.state = StateMutating
	defer func() { c.state = StateReady }()

	if err := op(ctx); err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	clients, err := c.api.ListClients(ctx)
	if err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	c.clients = clients
	c.refilter()
	return nil
}

// refilter recomputes the filtered view: case-insensitive substring
// match over name, email, company and phone.
func (c *ClientController) refilter() {
	if strings.TrimSpace(c.query) == "" {
		c.filtered = c.clients
		return
	}
	q := strings.ToLower(strings.TrimSpace(c.query))
	matched := make([]domain.Client, 0, len(c.clients))
	for _, client := range c.clients {
		if matchesClient(&client, q) {
			matched = append(matched, client)
		}
	}
	c.filtered = matched
}

func matchesClient(c *domain.Client, q string) bool {
	for _, field := range []string{c.Name, c.Email, c.Company, c.Phone} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ListKey returns a stable render key for a record: its id when the
// backend supplied one, otherwise a transient generated key. The
// backend does not always guarantee present or unique ids.
func ListKey(id string) string {
	if id != "" {
		return id
	}
	return "tmp-" + uuid.NewString()
}
