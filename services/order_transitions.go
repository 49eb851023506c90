package services

import (
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
)

// Staff-driven order lifecycle. Each action loads the order scoped to the
// caller's restaurant, validates the move against the transition table, then
// applies it with a status-guarded UPDATE so a concurrent change surfaces as
// ErrInvalidTransition instead of silently overwriting.

func (s *OrderService) Accept(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderAccepted, nil)
}

func (s *OrderService) Complete(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderCompleted, nil)
}

// Cancel takes an optional free-text reason.
func (s *OrderService) Cancel(restID, orderID uint, reason string) error {
	var r *string
	if reason != "" {
		r = &reason
	}
	return s.transition(restID, orderID, entity.OrderCancelled, r)
}

func (s *OrderService) Reject(restID, orderID uint) error {
	return s.transition(restID, orderID, entity.OrderRejected, nil)
}

func (s *OrderService) transition(restID, orderID uint, to string, reason *string) error {
	o, err := s.Repo.GetForRestaurant(restID, orderID)
	if err != nil {
		return err
	}
	if !entity.CanTransition(o.Status, to) {
		return ErrInvalidTransition
	}

	ok, err := s.Repo.TransitionStatus(o.ID, o.Status, to, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.Notifier.Notify(livequery.OrdersTopic(restID))
	return nil
}
