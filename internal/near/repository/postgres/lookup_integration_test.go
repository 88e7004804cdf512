package postgres

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

func (s *RepositorySuite) seedOrigins() {
	s.metrics.EXPECT().Observe(gomock.Any(), gomock.Nil(), gomock.Any()).Times(4)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.TransactionRecord{{
		TransactionHash:              "tx1",
		BlockTimestamp:               1,
		Status:                       model.StatusSuccessReceiptID,
		ConvertedIntoReceiptID:       "r1",
		ReceiptConversionTokensBurnt: "0",
	}}))
	s.Require().NoError(s.repo.InsertReceipts(s.testCtx, []model.ReceiptRecord{{
		ReceiptID:                     "r1",
		IncludedInBlockTimestamp:      1,
		ReceiptKind:                   model.ReceiptAction,
		OriginatedFromTransactionHash: "tx1",
	}}))
	s.Require().NoError(s.repo.InsertActionReceiptOutputData(s.testCtx, []model.ActionReceiptOutputData{{
		OutputDataID:                    "d1",
		OutputFromReceiptID:             "r1",
		ReceiptIncludedInBlockTimestamp: 1,
	}}))
	s.Require().NoError(s.repo.InsertExecutionOutcomeReceipts(s.testCtx, []model.ExecutionOutcomeReceipt{{
		ExecutedReceiptID: "r1",
		ProducedReceiptID: "r2",
	}}))
}

func (s *RepositorySuite) TestTxHashesByOutputDataIDs() {
	s.seedOrigins()
	s.expectObserve("tx_hashes_by_output_data_ids", 1)

	got, err := s.repo.TxHashesByOutputDataIDs(s.testCtx, []string{"d1", "d-missing"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"d1": "tx1"}, got)
}

func (s *RepositorySuite) TestTxHashesByProducedReceiptIDs() {
	s.seedOrigins()
	s.expectObserve("tx_hashes_by_produced_receipt_ids", 1)

	got, err := s.repo.TxHashesByProducedReceiptIDs(s.testCtx, []string{"r2", "r-missing"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"r2": "tx1"}, got)
}

func (s *RepositorySuite) TestTxHashesByConvertedReceiptIDs() {
	s.seedOrigins()
	s.expectObserve("tx_hashes_by_converted_receipt_ids", 1)

	got, err := s.repo.TxHashesByConvertedReceiptIDs(s.testCtx, []string{"r1", "r2"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"r1": "tx1"}, got)
}

func (s *RepositorySuite) TestCursorRoundTrip() {
	s.expectObserve("cursor", 2)
	s.expectObserve("save_cursor", 2)

	_, ok, err := s.repo.Cursor(s.testCtx, "near-testnet")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.repo.SaveCursor(s.testCtx, "near-testnet", 100))
	s.Require().NoError(s.repo.SaveCursor(s.testCtx, "near-testnet", 101))

	height, ok, err := s.repo.Cursor(s.testCtx, "near-testnet")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(uint64(101), height)
}
