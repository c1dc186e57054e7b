// Package gate classifies user intents against authentication and entity
// state. It never navigates or notifies; callers act on the Decision.
package gate

import "github.com/dmitrijs2005/auctionhub/internal/client/models"

type Action string

const (
	ActionBid           Action = "bid"
	ActionWatch         Action = "watch"
	ActionAddToCart     Action = "add-to-cart"
	ActionSellerArea    Action = "seller-area"
	ActionContactSeller Action = "contact-seller"
)

type Outcome int

const (
	Allowed Outcome = iota
	RedirectLogin
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case RedirectLogin:
		return "redirect-login"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

const (
	ReasonLoginToBid    = "must authenticate to bid"
	ReasonLoginRequired = "must authenticate"
	ReasonNotActive     = "auction not active"
	ReasonSellerOnly    = "seller privileges required"
)

// Decision is the result of evaluating one action.
type Decision struct {
	Action  Action
	Outcome Outcome
	Reason  string
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allowed
}

// Subject carries the entity state an action may depend on.
type Subject struct {
	AuctionStatus models.AuctionStatus
	IsSeller      bool
}

// Evaluate classifies action. Authentication is checked first for every
// action, so an anonymous caller always gets RedirectLogin regardless of the
// subject.
func Evaluate(authenticated bool, action Action, s Subject) Decision {
	if !authenticated {
		reason := ReasonLoginRequired
		if action == ActionBid {
			reason = ReasonLoginToBid
		}
		return Decision{Action: action, Outcome: RedirectLogin, Reason: reason}
	}

	switch action {
	case ActionBid:
		if s.AuctionStatus != models.AuctionActive {
			return Decision{Action: action, Outcome: Rejected, Reason: ReasonNotActive}
		}
	case ActionSellerArea:
		if !s.IsSeller {
			return Decision{Action: action, Outcome: Rejected, Reason: ReasonSellerOnly}
		}
	}
	return Decision{Action: action, Outcome: Allowed}
}

func Bid(authenticated bool, status models.AuctionStatus) Decision {
	return Evaluate(authenticated, ActionBid, Subject{AuctionStatus: status})
}

func Watch(authenticated bool) Decision {
	return Evaluate(authenticated, ActionWatch, Subject{})
}

func AddToCart(authenticated bool) Decision {
	return Evaluate(authenticated, ActionAddToCart, Subject{})
}

func SellerArea(authenticated, isSeller bool) Decision {
	return Evaluate(authenticated, ActionSellerArea, Subject{IsSeller: isSeller})
}

func ContactSeller(authenticated bool) Decision {
	return Evaluate(authenticated, ActionContactSeller, Subject{})
}
