package types

const (
	EventTypeInstantiated     = "ArcadeInstantiated"
	EventTypeAdminsAdded      = "AdminsAdded"
	EventTypeAdminLeft        = "AdminLeft"
	EventTypePriceUpdated     = "PriceUpdated"
	EventTypeTopUserAdded     = "TopUserAdded"
	EventTypeScoreRejected    = "ScoreRejected"
	EventTypePrizeDistributed = "PrizeDistributed"
	EventTypePlayed           = "Played"
	EventTypePaymentRefunded  = "PaymentRefunded"
)

const (
	AttributeKeyAction          = "action"
	AttributeKeySender          = "sender"
	AttributeKeyArcade          = "arcade"
	AttributeKeyDenom           = "denom"
	AttributeKeyPrice           = "price"
	AttributeKeyAdmin           = "admin"
	AttributeKeyAdmins          = "admins"
	AttributeKeyName            = "name"
	AttributeKeyAccount         = "account"
	AttributeKeyScore           = "score"
	AttributeKeyEvicted         = "evicted"
	AttributeKeyBeneficiary     = "beneficiary"
	AttributeKeyAmount          = "amount"
	AttributeKeyReceivedTokens  = "received_tokens"
	AttributeKeyGameCounter     = "game_counter"
	AttributeKeyShare           = "share"
	AttributeKeyRetained        = "retained"
	AttributeKeyRemainingAdmins = "remaining_admins"
)
