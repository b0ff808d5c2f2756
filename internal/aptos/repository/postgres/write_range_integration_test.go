package postgres

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/shopspring/decimal"
)

var integrationInsertedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testCoin(version int64, name string, supply int64) model.CoinInfo {
	return model.CoinInfo{
		CoinType:                  "0xcafe::test_coin::TestCoin",
		TransactionVersionCreated: version,
		CreatorAddress:            "0xcafe",
		Name:                      name,
		Symbol:                    "TC",
		Decimals:                  6,
		Supply:                    decimal.NewNullDecimal(decimal.NewFromInt(supply)),
		InsertedAt:                integrationInsertedAt,
	}
}

func testActivity(version, sequence int64) model.CoinActivity {
	return model.CoinActivity{
		TransactionVersion:   version,
		EventAccountAddress:  "0xa11ce",
		EventCreationNumber:  3,
		EventSequenceNumber:  sequence,
		OwnerAddress:         "0xa11ce",
		CoinType:             "0x1::aptos_coin::AptosCoin",
		Amount:               decimal.NewFromInt(-250),
		ActivityType:         "0x1::coin::WithdrawEvent",
		IsTransactionSuccess: true,
		EntryFunctionID:      "0x1::coin::transfer",
		InsertedAt:           integrationInsertedAt,
	}
}

func testLookup(version int64, address string, expiration int64) model.CurrentAnsLookup {
	lookup := model.CurrentAnsLookup{
		Domain:                 "alice",
		LastTransactionVersion: version,
		ExpirationTimestamp:    time.Unix(expiration, 0).UTC(),
		InsertedAt:             integrationInsertedAt,
	}
	if address != "" {
		lookup.RegisteredAddress = &address
	}
	return lookup
}

func (s *RepositorySuite) TestWriteRange_GenesisCoinInfo() {
	rows := model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(0, "TestCoin", 1000)}}
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 0, End: 0}, rows))

	var (
		version  int64
		decimals int32
		supply   *string
	)
	err := s.repo.db.QueryRow(s.testCtx,
		`SELECT transaction_version_created, decimals, supply::text FROM coin_infos WHERE coin_type = $1`,
		"0xcafe::test_coin::TestCoin",
	).Scan(&version, &decimals, &supply)
	s.Require().NoError(err)
	s.Equal(int64(0), version)
	s.Equal(int32(6), decimals)
	s.Require().NotNil(supply)
	s.Equal("1000", *supply)
}

func (s *RepositorySuite) TestWriteRange_CoinInfoKeepsFirstWrite() {
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 0, End: 9},
		model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(3, "First", 1)}}))
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 10, End: 19},
		model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(12, "Second", 2)}}))

	var (
		version int64
		name    string
	)
	err := s.repo.db.QueryRow(s.testCtx,
		`SELECT transaction_version_created, name FROM coin_infos WHERE coin_type = $1`,
		"0xcafe::test_coin::TestCoin",
	).Scan(&version, &name)
	s.Require().NoError(err)
	s.Equal(int64(3), version)
	s.Equal("First", name)
}

func (s *RepositorySuite) TestWriteRange_CoinInfoEarlierRangeCommittedLateWins() {
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 10, End: 19},
		model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(12, "Later", 2)}}))
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 0, End: 9},
		model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(3, "Earlier", 1)}}))
	// reprocessing the later range again must not move the creation version forward
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 10, End: 19},
		model.RangeRows{CoinInfos: []model.CoinInfo{testCoin(12, "Later", 2)}}))

	var (
		version int64
		name    string
		supply  string
	)
	err := s.repo.db.QueryRow(s.testCtx,
		`SELECT transaction_version_created, name, supply::text FROM coin_infos WHERE coin_type = $1`,
		"0xcafe::test_coin::TestCoin",
	).Scan(&version, &name, &supply)
	s.Require().NoError(err)
	s.Equal(int64(3), version)
	s.Equal("Earlier", name)
	s.Equal("1", supply)
	s.Equal(int64(1), s.countRows("coin_infos"))
}

func (s *RepositorySuite) TestWriteRange_ReprocessingIsIdempotent() {
	vr := model.VersionRange{Start: 20, End: 21}
	rows := model.RangeRows{
		CoinInfos:      []model.CoinInfo{testCoin(20, "TestCoin", 1000)},
		CoinActivities: []model.CoinActivity{testActivity(20, 0), testActivity(21, 1)},
		AnsLookups:     []model.CurrentAnsLookup{testLookup(21, "0xabc", 200)},
	}

	s.Require().NoError(s.repo.WriteRange(s.testCtx, vr, rows))
	s.Require().NoError(s.repo.WriteRange(s.testCtx, vr, rows))

	s.Equal(int64(1), s.countRows("coin_infos"))
	s.Equal(int64(2), s.countRows("coin_activities"))
	s.Equal(int64(1), s.countRows("current_ans_lookup"))

	var amount string
	err := s.repo.db.QueryRow(s.testCtx,
		`SELECT amount::text FROM coin_activities WHERE transaction_version = 21`,
	).Scan(&amount)
	s.Require().NoError(err)
	s.Equal("-250", amount)
}

func (s *RepositorySuite) TestWriteRange_AnsLookupNewestVersionWins() {
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 10, End: 10},
		model.RangeRows{AnsLookups: []model.CurrentAnsLookup{testLookup(10, "", 100)}}))
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 12, End: 12},
		model.RangeRows{AnsLookups: []model.CurrentAnsLookup{testLookup(12, "0xabc", 200)}}))
	// an older range committed late must not roll the row back
	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 11, End: 11},
		model.RangeRows{AnsLookups: []model.CurrentAnsLookup{testLookup(11, "0xdef", 150)}}))

	var (
		address    *string
		version    int64
		expiration time.Time
	)
	err := s.repo.db.QueryRow(s.testCtx,
		`SELECT registered_address, last_transaction_version, expiration_timestamp FROM current_ans_lookup WHERE domain = $1 AND subdomain = $2`,
		"alice", "",
	).Scan(&address, &version, &expiration)
	s.Require().NoError(err)
	s.Require().NotNil(address)
	s.Equal("0xabc", *address)
	s.Equal(int64(12), version)
	s.True(expiration.Equal(time.Unix(200, 0).UTC()), "expiration = %v", expiration)
}

func (s *RepositorySuite) TestWriteRange_ChunksUnderParameterLimit() {
	repo := s.newRepository(24)
	defer repo.Close()

	activities := make([]model.CoinActivity, 0, 25)
	for i := int64(0); i < 25; i++ {
		activities = append(activities, testActivity(100+i, i))
	}
	s.Require().NoError(repo.WriteRange(s.testCtx, model.VersionRange{Start: 100, End: 124},
		model.RangeRows{CoinActivities: activities}))

	s.Equal(int64(25), s.countRows("coin_activities"))
}

func (s *RepositorySuite) TestWriteRange_DegradedRetryStripsNulBytes() {
	coin := testCoin(30, "Bad\x00Name", 5)
	activity := testActivity(30, 0)
	activity.EntryFunctionID = "0x1::coin::\x00transfer"

	s.Require().NoError(s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 30, End: 30},
		model.RangeRows{CoinInfos: []model.CoinInfo{coin}, CoinActivities: []model.CoinActivity{activity}}))

	var name, entry string
	s.Require().NoError(s.repo.db.QueryRow(s.testCtx, `SELECT name FROM coin_infos`).Scan(&name))
	s.Require().NoError(s.repo.db.QueryRow(s.testCtx, `SELECT entry_function_id_str FROM coin_activities`).Scan(&entry))
	s.Equal("BadName", name)
	s.Equal("0x1::coin::transfer", entry)
}

func (s *RepositorySuite) TestWriteRange_FailedRangeLeavesNothingBehind() {
	_, err := s.repo.db.Exec(s.testCtx,
		`ALTER TABLE current_ans_lookup ADD CONSTRAINT reject_domain CHECK (domain <> 'reject')`)
	s.Require().NoError(err)

	lookup := testLookup(40, "", 100)
	lookup.Domain = "reject"

	err = s.repo.WriteRange(s.testCtx, model.VersionRange{Start: 40, End: 40},
		model.RangeRows{
			CoinInfos:      []model.CoinInfo{testCoin(40, "TestCoin", 1)},
			CoinActivities: []model.CoinActivity{testActivity(40, 0)},
			AnsLookups:     []model.CurrentAnsLookup{lookup},
		})
	s.Require().Error(err)
	s.Contains(err.Error(), "[40, 40]")

	s.Equal(int64(0), s.countRows("coin_infos"))
	s.Equal(int64(0), s.countRows("coin_activities"))
	s.Equal(int64(0), s.countRows("current_ans_lookup"))
}

func (s *RepositorySuite) TestProcessorStatus() {
	_, ok, err := s.repo.LastSuccessVersion(s.testCtx, "coin_processor")
	s.Require().NoError(err)
	s.False(ok)

	now := time.Now().UTC().Truncate(time.Microsecond)
	s.Require().NoError(s.repo.UpdateLastSuccessVersion(s.testCtx, "coin_processor", 10, now))
	s.Require().NoError(s.repo.UpdateLastSuccessVersion(s.testCtx, "coin_processor", 5, now))

	version, ok, err := s.repo.LastSuccessVersion(s.testCtx, "coin_processor")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(int64(10), version)

	s.Require().NoError(s.repo.UpdateLastSuccessVersion(s.testCtx, "coin_processor", 20, now))
	version, _, err = s.repo.LastSuccessVersion(s.testCtx, "coin_processor")
	s.Require().NoError(err)
	s.Equal(int64(20), version)
}
