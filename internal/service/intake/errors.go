package intake

import "errors"

var (
	ErrEmptyText         = errors.New("empty request text")
	ErrIntakeUnavailable = errors.New("intake capability unavailable")
)
