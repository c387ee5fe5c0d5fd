package handler

import (
	"wedding-planner-go/internal/config"
	documentsdomain "wedding-planner-go/internal/domain/documents"
	eventdomain "wedding-planner-go/internal/domain/event"
	financedomain "wedding-planner-go/internal/domain/finance"
	guestsdomain "wedding-planner-go/internal/domain/guests"
	metricsdomain "wedding-planner-go/internal/domain/metrics"
	notesdomain "wedding-planner-go/internal/domain/notes"
	planningdomain "wedding-planner-go/internal/domain/planning"
	registrydomain "wedding-planner-go/internal/domain/registry"
	tasksdomain "wedding-planner-go/internal/domain/tasks"
	userdomain "wedding-planner-go/internal/domain/user"
	"wedding-planner-go/pkg/logger"
)

type Handlers struct {
	Users     *userdomain.Service
	Events    *eventdomain.Service
	Tasks     *tasksdomain.Service
	Finance   *financedomain.Service
	Guests    *guestsdomain.Service
	Registry  *registrydomain.Service
	Planning  *planningdomain.Service
	Documents *documentsdomain.Service
	Notes     *notesdomain.Service
	Metrics   *metricsdomain.Service

	session config.SessionConfig
	log     logger.Logger
}

type Deps struct {
	Users     *userdomain.Service
	Events    *eventdomain.Service
	Tasks     *tasksdomain.Service
	Finance   *financedomain.Service
	Guests    *guestsdomain.Service
	Registry  *registrydomain.Service
	Planning  *planningdomain.Service
	Documents *documentsdomain.Service
	Notes     *notesdomain.Service
	Metrics   *metricsdomain.Service
}

func New(deps Deps, session config.SessionConfig, log logger.Logger) *Handlers {
	return &Handlers{
		Users:     deps.Users,
		Events:    deps.Events,
		Tasks:     deps.Tasks,
		Finance:   deps.Finance,
		Guests:    deps.Guests,
		Registry:  deps.Registry,
		Planning:  deps.Planning,
		Documents: deps.Documents,
		Notes:     deps.Notes,
		Metrics:   deps.Metrics,

		session: session,
		log:     log,
	}
}
