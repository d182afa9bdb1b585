package export

import (
	"context"
	"encoding/csv"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	exportmock "github.com/BielosX/wombat/pokedex/src/export/mock"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

type ExporterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	source   *exportmock.MockRecordSource
	uploader *exportmock.MockUploader
	exporter *Exporter
	ctx      context.Context
}

func TestExporterSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}

func (s *ExporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = exportmock.NewMockRecordSource(s.ctrl)
	s.uploader = exportmock.NewMockUploader(s.ctrl)
	s.ctx = context.Background()

	exporter, err := NewExporter(&Config{
		Source:      s.source,
		Uploader:    s.uploader,
		Bucket:      "dex-bucket",
		Concurrency: 2,
		Sugar:       zaptest.NewLogger(s.T()).Sugar(),
	})
	s.Require().NoError(err)
	exporter.newRunId = func() string { return "run-1" }
	s.exporter = exporter
}

func (s *ExporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func record(id int, name string) *pokedex.Record {
	return &pokedex.Record{
		Id:            id,
		Name:          name,
		Types:         []string{"normal"},
		Abilities:     []string{"Fuga"},
		HiddenAbility: []string{},
		BaseStats: pokedex.BaseStats{
			"hp": 30, "attack": 56, "defense": 35,
			"special-attack": 25, "special-defense": 35, "speed": 72,
		},
	}
}

func (s *ExporterTestSuite) TestExportUploadsParquetAndCsv() {
	s.source.EXPECT().Aggregate(gomock.Any(), pokedex.QueryByID(19)).Return(record(19, "rattata"), nil)
	s.source.EXPECT().Aggregate(gomock.Any(), pokedex.QueryByID(20)).Return(record(20, "raticate"), nil)

	s.uploader.EXPECT().
		PutFile(gomock.Any(), gomock.Any(), "dex-bucket", "pokemons/19_20/run-1.parquet", parquetContentType).
		DoAndReturn(func(_ context.Context, reader io.Reader, _, _, _ string) error {
			body, err := io.ReadAll(reader)
			s.Require().NoError(err)
			s.Equal("PAR1", string(body[:4]))
			return nil
		})
	s.uploader.EXPECT().
		PutFile(gomock.Any(), gomock.Any(), "dex-bucket", "pokemons/19_20/run-1.csv", csvContentType).
		DoAndReturn(func(_ context.Context, reader io.Reader, _, _, _ string) error {
			rows, err := csv.NewReader(reader).ReadAll()
			s.Require().NoError(err)
			s.Require().Len(rows, 3)
			s.Equal("rattata", rows[1][1])
			s.Equal("raticate", rows[2][1])
			return nil
		})

	result, err := s.exporter.Export(s.ctx, Schedule{Limit: 2, Offset: 18})
	s.Require().NoError(err)
	s.Equal(&ScraperResult{
		RunId:           "run-1",
		Count:           2,
		ParquetFileName: "pokemons/19_20/run-1.parquet",
		CsvFileName:     "pokemons/19_20/run-1.csv",
	}, result)
}

func (s *ExporterTestSuite) TestExportAbortsOnAggregationFailure() {
	s.source.EXPECT().Aggregate(gomock.Any(), pokedex.QueryByID(1)).AnyTimes().Return(record(1, "bulbasaur"), nil)
	s.source.EXPECT().Aggregate(gomock.Any(), pokedex.QueryByID(2)).Return(nil, &pokeapi.NetworkUnavailableError{URL: "pokemon/2"})
	s.source.EXPECT().Aggregate(gomock.Any(), pokedex.QueryByID(3)).AnyTimes().Return(record(3, "venusaur"), nil)

	result, err := s.exporter.Export(s.ctx, Schedule{Limit: 3, Offset: 0})
	s.Nil(result)
	s.True(pokeapi.IsNetworkUnavailable(err))
}

func (s *ExporterTestSuite) TestExportRejectsEmptySchedule() {
	_, err := s.exporter.Export(s.ctx, Schedule{Limit: 0, Offset: 10})
	s.Error(err)
}

func (s *ExporterTestSuite) TestPlan() {
	s.Equal([]Schedule{
		{Limit: 20, Offset: 0},
		{Limit: 20, Offset: 20},
		{Limit: 20, Offset: 40},
	}, Plan(ScheduleRequest{PageSize: 20, StartOffset: 0, PageCount: 3}))
	s.Empty(Plan(ScheduleRequest{PageSize: 20, PageCount: 0}))
}

func (s *ExporterTestSuite) TestConfigValidation() {
	_, err := NewExporter(&Config{Uploader: s.uploader, Bucket: "b", Sugar: zaptest.NewLogger(s.T()).Sugar()})
	s.Error(err)
	_, err = NewExporter(&Config{Source: s.source, Uploader: s.uploader, Sugar: zaptest.NewLogger(s.T()).Sugar()})
	s.Error(err)
}
