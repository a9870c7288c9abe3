package domain

type TransactionType string

const (
	TransactionTypeCardLoad     TransactionType = "CARD_LOAD"
	TransactionTypeBankLoad     TransactionType = "BANK_LOAD"
	TransactionTypeZelleLoad    TransactionType = "ZELLE_LOAD"
	TransactionTypeCashAppLoad  TransactionType = "CASHAPP_LOAD"
	TransactionTypeApplePayLoad TransactionType = "APPLEPAY_LOAD"
	TransactionTypeTopup        TransactionType = "TOPUP"
	TransactionTypeTransfer     TransactionType = "TRANSFER"
	TransactionTypePayout       TransactionType = "PAYOUT"
)

// LoadMethods способы пополнения, доступные пользователю через submitLoad.
var LoadMethods = []TransactionType{
	TransactionTypeCardLoad,
	TransactionTypeBankLoad,
	TransactionTypeZelleLoad,
	TransactionTypeCashAppLoad,
	TransactionTypeApplePayLoad,
}

// IsLoadMethod проверяет, что тип является способом пополнения (TOPUP сюда не входит, он только административный).
func (t TransactionType) IsLoadMethod() bool {
	for _, m := range LoadMethods {
		if m == t {
			return true
		}
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

type DecisionAction string

const (
	DecisionApprove DecisionAction = "APPROVE"
	DecisionReject  DecisionAction = "REJECT"
)

// Outcome возвращает approval_status, в который переводит транзакцию данное решение.
func (a DecisionAction) Outcome() ApprovalStatus {
	if a == DecisionApprove {
		return ApprovalStatusApproved
	}
	return ApprovalStatusRejected
}

func (a DecisionAction) Valid() bool {
	return a == DecisionApprove || a == DecisionReject
}

type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Bucket часть кошелька, над которой выполняется операция credit/debit.
type Bucket string

const (
	BucketAvailable Bucket = "available"
	BucketPending   Bucket = "pending"
	BucketOnHold    Bucket = "on_hold"
)

func (b Bucket) Valid() bool {
	switch b {
	case BucketAvailable, BucketPending, BucketOnHold:
		return true
	default:
		return false
	}
}
