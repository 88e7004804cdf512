package contracts

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveDecode(contract, method string, events int, err error)
	}
)
