package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
)

// ChangeStatus moves an order to the requested status and returns the
// human-readable label. The chef/paid carve-out sits on top of the coarse
// policy check the route already ran.
func (s *OrderService) ChangeStatus(actor Actor, orderID uint, status string) (string, error) {
	if !entity.ValidStatus(status) {
		return "", ValidationError{Field: "status", Message: "invalid status"}
	}
	if !CanSetStatus(actor, status) {
		return "", ForbiddenError{Message: "a chef may not set status to Paid"}
	}
	if _, err := s.Repo.GetOrder(s.DB, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", NotFoundError{Resource: "order"}
		}
		return "", err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, orderID, status); err != nil {
			return err
		}
		// Lines are untouched here, but the cached total is refreshed on
		// every status change rather than trusting it to be current.
		return s.recalcTotal(tx, orderID)
	})
	if err != nil {
		return "", err
	}
	return entity.StatusLabel(status), nil
}
