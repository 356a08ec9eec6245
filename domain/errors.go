package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if a privileged call is made by a non-administrator
	ErrUnauthorized = errors.New("unauthorized")

	// auction lifecycle errors
	ErrCollectionNotApproved = errors.New("collection not approved")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrAuctionNotActive      = errors.New("auction not active")
	ErrAuctionExpired        = errors.New("auction expired")
	ErrAlreadySettled        = errors.New("auction already settled")
	ErrTooEarly              = errors.New("auction not ended yet")
	ErrAuctionHasBids        = errors.New("auction has bids")

	// bid errors
	ErrBidTooLow         = errors.New("bid too low")
	ErrFeedNotFound      = errors.New("no price feed")
	ErrOracleUnavailable = errors.New("oracle unavailable")
	ErrTransferFailed    = errors.New("transfer failed")
	ErrUnknownPayToken   = errors.New("unknown pay token")

	// upgrade errors
	ErrIncompatibleLayout  = errors.New("incompatible storage layout")
	ErrUnknownLogicVersion = errors.New("unknown logic version")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
