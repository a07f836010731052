// Package report computes the read-only aggregation views over the
// competency ledger: gap histograms, rankings and performance statistics.
// Nothing here writes; every metric is derived per request.
package report

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/report"
)

type ReportService interface {
	GapHistogram(ctx context.Context) ([]report.GapHistogramEntry, error)
	EmployeeCompetencyDetails(ctx context.Context) ([]report.DetailEntry, error)
	GapRanking(ctx context.Context, competencyCode string) ([]report.GapRankEntry, error)
	DepartmentPerformance(ctx context.Context, departmentCode string) (report.DepartmentPerformance, error)
	OrganizationRanking(ctx context.Context) ([]report.OverallCompetencyPerformance, error)
}

type reportServiceImpl struct {
	reportRepo     report.ReportRepository
	competencyRepo competency.CompetencyRepository
	departmentRepo department.DepartmentRepository
}

func NewReportService(
	reportRepo report.ReportRepository,
	competencyRepo competency.CompetencyRepository,
	departmentRepo department.DepartmentRepository,
) ReportService {
	return &reportServiceImpl{
		reportRepo:     reportRepo,
		competencyRepo: competencyRepo,
		departmentRepo: departmentRepo,
	}
}

// round2 rounds half away from zero to two decimal places, matching how the
// figures are presented downstream.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// GapHistogram buckets ledger rows per competency by gap of exactly 1, 2 or
// 3. Every catalog competency appears, including those nobody holds yet.
func (s *reportServiceImpl) GapHistogram(ctx context.Context) ([]report.GapHistogramEntry, error) {
	competencies, err := s.competencyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.reportRepo.AllLedgerScores(ctx)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*report.GapHistogramEntry, len(competencies))
	entries := make([]report.GapHistogramEntry, 0, len(competencies))
	for _, c := range competencies {
		entries = append(entries, report.GapHistogramEntry{
			CompetencyCode: c.Code,
			CompetencyName: c.Name,
		})
	}
	for i := range entries {
		byCode[entries[i].CompetencyCode] = &entries[i]
	}

	for _, row := range scores {
		entry, ok := byCode[row.CompetencyCode]
		if !ok {
			continue
		}
		switch row.RequiredScore - row.ActualScore {
		case 1:
			entry.Gap1++
		case 2:
			entry.Gap2++
		case 3:
			entry.Gap3++
		default:
			continue
		}
		entry.TotalGapEmployees++
	}

	return entries, nil
}

func (s *reportServiceImpl) EmployeeCompetencyDetails(ctx context.Context) ([]report.DetailEntry, error) {
	return s.reportRepo.Details(ctx)
}

// GapRanking lists the employees still short of a competency's required
// score, worst gap first.
func (s *reportServiceImpl) GapRanking(ctx context.Context, competencyCode string) ([]report.GapRankEntry, error) {
	if _, err := s.competencyRepo.GetByCode(ctx, competencyCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, competency.ErrCompetencyNotFound
		}
		return nil, err
	}

	rows, err := s.reportRepo.ScoresByCompetency(ctx, competencyCode)
	if err != nil {
		return nil, err
	}

	entries := make([]report.GapRankEntry, 0, len(rows))
	for _, row := range rows {
		gap := row.RequiredScore - row.ActualScore
		if gap <= 0 {
			continue
		}
		entries = append(entries, report.GapRankEntry{
			EmployeeNumber: row.EmployeeNumber,
			EmployeeName:   row.EmployeeName,
			RequiredScore:  row.RequiredScore,
			ActualScore:    row.ActualScore,
			Gap:            gap,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Gap > entries[j].Gap })
	return entries, nil
}

// competencyStats folds flat stat rows into per-competency aggregates keyed
// and ordered by first appearance.
type statAggregate struct {
	code         string
	name         string
	description  string
	catalogScore int
	total        int
	sumActual    int
	meeting      int
}

func aggregateStats(rows []report.StatRow) []statAggregate {
	index := make(map[string]int)
	var aggs []statAggregate
	for _, row := range rows {
		i, ok := index[row.CompetencyCode]
		if !ok {
			i = len(aggs)
			index[row.CompetencyCode] = i
			aggs = append(aggs, statAggregate{
				code:         row.CompetencyCode,
				name:         row.CompetencyName,
				description:  row.Description,
				catalogScore: row.CatalogRequiredScore,
			})
		}
		agg := &aggs[i]
		agg.total++
		agg.sumActual += row.ActualScore
		if row.ActualScore >= row.RequiredScore {
			agg.meeting++
		}
	}
	return aggs
}

func (a statAggregate) averageScore() float64 {
	if a.total == 0 {
		return 0
	}
	return round2(float64(a.sumActual) / float64(a.total))
}

func (a statAggregate) fulfillmentRate() float64 {
	if a.total == 0 {
		return 0
	}
	return round2(float64(a.meeting) / float64(a.total) * 100)
}

// DepartmentPerformance aggregates one department's ledger rows per
// competency and summarizes them. The summary is the unweighted mean of the
// per-competency figures, so a two-person competency counts as much as a
// twenty-person one.
func (s *reportServiceImpl) DepartmentPerformance(ctx context.Context, departmentCode string) (report.DepartmentPerformance, error) {
	dept, err := s.departmentRepo.GetByCode(ctx, departmentCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.DepartmentPerformance{}, department.ErrDepartmentNotFound
		}
		return report.DepartmentPerformance{}, err
	}

	rows, err := s.reportRepo.ScoresByDepartment(ctx, departmentCode)
	if err != nil {
		return report.DepartmentPerformance{}, err
	}

	aggs := aggregateStats(rows)
	stats := make([]report.CompetencyPerformance, 0, len(aggs))
	for _, agg := range aggs {
		stats = append(stats, report.CompetencyPerformance{
			CompetencyCode:           agg.code,
			CompetencyName:           agg.name,
			Description:              agg.description,
			RequiredScore:            agg.catalogScore,
			AverageScore:             agg.averageScore(),
			FulfillmentRate:          agg.fulfillmentRate(),
			EmployeesEvaluated:       agg.total,
			EmployeesMeetingRequired: agg.meeting,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].AverageScore > stats[j].AverageScore })
	for i := range stats {
		stats[i].Rank = i + 1
	}

	result := report.DepartmentPerformance{
		DepartmentCode: dept.Code,
		DepartmentName: dept.Name,
		Competencies:   stats,
	}
	if len(stats) > 0 {
		var sumAvg, sumRate float64
		for _, st := range stats {
			sumAvg += st.AverageScore
			sumRate += st.FulfillmentRate
		}
		result.OverallAverageScore = round2(sumAvg / float64(len(stats)))
		result.OverallFulfillmentRate = round2(sumRate / float64(len(stats)))
	}

	return result, nil
}

// OrganizationRanking ranks every competency org-wide by fulfillment rate,
// then average score. performance_gap is signed: negative means the
// workforce averages below the catalog requirement.
func (s *reportServiceImpl) OrganizationRanking(ctx context.Context) ([]report.OverallCompetencyPerformance, error) {
	rows, err := s.reportRepo.ScoresAll(ctx)
	if err != nil {
		return nil, err
	}

	aggs := aggregateStats(rows)
	entries := make([]report.OverallCompetencyPerformance, 0, len(aggs))
	for _, agg := range aggs {
		avg := agg.averageScore()
		entries = append(entries, report.OverallCompetencyPerformance{
			CompetencyCode:           agg.code,
			CompetencyName:           agg.name,
			Description:              agg.description,
			RequiredScore:            agg.catalogScore,
			AverageScore:             avg,
			FulfillmentRate:          agg.fulfillmentRate(),
			TotalEvaluations:         agg.total,
			EmployeesMeetingRequired: agg.meeting,
			PerformanceGap:           round2(avg - float64(agg.catalogScore)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].FulfillmentRate != entries[j].FulfillmentRate {
			return entries[i].FulfillmentRate > entries[j].FulfillmentRate
		}
		return entries[i].AverageScore > entries[j].AverageScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
