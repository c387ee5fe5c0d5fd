package finance

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrDepositNotFound = errors.New("deposit not found")
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrInvalidInput    = errors.New("invalid input")
)
