package repoargs

type RepositoryName string

const (
	WalletRepoName      RepositoryName = "wallet"
	TransactionRepoName RepositoryName = "transaction"
	OrderRepoName       RepositoryName = "order"
	EscrowRepoName      RepositoryName = "escrow"
	ShipmentRepoName    RepositoryName = "shipment"
	DepositRepoName     RepositoryName = "admin_deposit"
	ProfileRepoName     RepositoryName = "profile"
	StatsRepoName       RepositoryName = "stats"
)

// Page параметры постраничной выборки.
type Page struct {
	Limit  uint
	Offset uint
}
