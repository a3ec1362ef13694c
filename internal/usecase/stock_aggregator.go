package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	domsvc "StockScope/internal/domain/service"
	"StockScope/internal/service/metrics"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/util"
)

const (
	historyDays    = 365
	defaultTimeout = 10 * time.Second
)

// StockAggregator composes one StockDetails record from five independent
// upstream sources. Every sub-fetch is guarded: a failure degrades its own
// fields to the defaults set by models.NewStockDetails and nothing else.
type StockAggregator struct {
	market    drepo.MarketData
	news      drepo.NewsSource
	sentiment domsvc.SentimentAnalyzer
	risk      domsvc.RiskAnalyzer
	predictor domsvc.PricePredictor

	portfolio []string
	newsLimit int
	timeout   time.Duration
	l         *applogger.Logger
}

func NewStockAggregator(
	market drepo.MarketData,
	news drepo.NewsSource,
	sentiment domsvc.SentimentAnalyzer,
	risk domsvc.RiskAnalyzer,
	predictor domsvc.PricePredictor,
	portfolio []string,
	newsLimit int,
	l *applogger.Logger,
) *StockAggregator {
	metrics.Register()
	if newsLimit <= 0 {
		newsLimit = 5
	}
	return &StockAggregator{
		market:    market,
		news:      news,
		sentiment: sentiment,
		risk:      risk,
		predictor: predictor,
		portfolio: portfolio,
		newsLimit: newsLimit,
		timeout:   defaultTimeout,
		l:         l,
	}
}

// GetStockDetails runs the five sub-fetches concurrently and merges their
// results. It never fails: if something escapes the per-fetch guards the
// minimal record with an error string is returned instead.
func (a *StockAggregator) GetStockDetails(ctx context.Context, symbol string) (details *models.StockDetails) {
	defer func() {
		if r := recover(); r != nil {
			a.l.Error("stock details aggregation panic",
				applogger.String("symbol", symbol),
				applogger.Any("panic", r),
			)
			details = a.minimalDetails(symbol, fmt.Sprintf("Failed to retrieve complete stock data: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	details = models.NewStockDetails(symbol)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		failed    = map[string]string{}
		profile   models.Profile
		profileOK bool
		daily     []float64
		history   []models.HistoricalPoint
		newsItems []models.NewsItem
		report    models.SentimentReport
		reportOK  bool
		riskRes   *models.RiskAnalysis
		predRes   *models.PricePrediction
	)

	fail := func(source, msg string) {
		mu.Lock()
		failed[source] = msg
		mu.Unlock()
	}

	// 1. Market data: profile + 1-day closes + 1-year history. Each call
	// degrades independently.
	wg.Add(1)
	go a.guarded(&wg, symbol, "market", fail, func() error {
		p, err := a.market.Profile(ctx, symbol)
		if err == nil {
			profile, profileOK = p, true
		} else {
			a.l.Warn("profile fetch failed", applogger.String("symbol", symbol), applogger.Error(err))
		}

		d, err := a.market.DailyCloses(ctx, symbol)
		if err != nil {
			return fmt.Errorf("daily closes: %w", err)
		}
		daily = d

		h, err := a.market.History(ctx, symbol, historyDays)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		history = h
		return nil
	})

	// 2. News, capped at the provider limit.
	wg.Add(1)
	go a.guarded(&wg, symbol, "news", fail, func() error {
		items, err := a.news.LatestNews(ctx, symbol, a.newsLimit)
		if err != nil {
			return err
		}
		newsItems = items
		return nil
	})

	// 3. Sentiment. Its news replaces the provider news when non-empty,
	// resolved after the join below.
	wg.Add(1)
	go a.guarded(&wg, symbol, "sentiment", fail, func() error {
		r, err := a.sentiment.Analyze(ctx, symbol)
		if err != nil {
			return err
		}
		report, reportOK = r, true
		return nil
	})

	// 4. Risk, direct collaborator delegation.
	wg.Add(1)
	go a.guarded(&wg, symbol, "risk", fail, func() error {
		r, err := a.risk.Analyze(ctx, symbol, a.portfolio)
		if err != nil {
			return err
		}
		riskRes = &r
		return nil
	})

	// 5. Price prediction over the trailing 365-day window.
	wg.Add(1)
	go a.guarded(&wg, symbol, "prediction", fail, func() error {
		from, to := util.TrailingWindow(historyDays)
		p, err := a.predictor.Predict(ctx, symbol, from, to)
		if err != nil {
			return err
		}
		predRes = &p
		return nil
	})

	wg.Wait()

	if profileOK {
		details.Profile = mergeProfile(details.Profile, profile)
	}
	details.CurrentQuote = deriveQuote(daily)
	if len(history) > 0 {
		details.HistoricalPrices = history
	}

	if len(newsItems) > 0 {
		details.News = newsItems
	}
	if reportOK {
		if len(report.News) > 0 {
			details.News = report.News
		}
		if report.OverallPrediction != "" {
			p := report.OverallPrediction
			details.Sentiment = &models.Sentiment{OverallPrediction: &p}
		}
	}

	if riskRes != nil {
		details.RiskAnalysis = riskRes
	}
	details.PricePrediction = predRes

	// Every source down: keep the defaulted record but tell the caller.
	if len(failed) == 5 {
		details.Error = "Failed to retrieve complete stock data"
	}

	return details
}

// AnalyzeRisk serves the risk-only endpoint. On collaborator failure it
// returns the all-"N/A" shape with the error message attached instead of
// failing the request.
func (a *StockAggregator) AnalyzeRisk(ctx context.Context, symbol string) *models.RiskAnalysis {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res, err := a.risk.Analyze(ctx, symbol, a.portfolio)
	if err != nil {
		a.l.Error("risk analysis failed", applogger.String("symbol", symbol), applogger.Error(err))
		metrics.SubfetchErrors.WithLabelValues("risk").Inc()
		d := models.DefaultRiskAnalysis()
		d.Error = "Failed to analyze stock risk"
		return d
	}
	return &res
}

// guarded runs one sub-fetch, absorbing errors and panics so siblings keep
// their results. Failures are recorded through fail for the total-failure
// check after the join.
func (a *StockAggregator) guarded(wg *sync.WaitGroup, symbol, source string, fail func(source, msg string), fn func() error) {
	start := time.Now()
	defer wg.Done()
	defer func() {
		metrics.SubfetchLatency.WithLabelValues(source).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			metrics.SubfetchErrors.WithLabelValues(source).Inc()
			fail(source, fmt.Sprintf("panic: %v", r))
			a.l.Error("sub-fetch panic",
				applogger.String("symbol", symbol),
				applogger.String("source", source),
				applogger.Any("panic", r),
			)
		}
	}()

	if err := fn(); err != nil {
		metrics.SubfetchErrors.WithLabelValues(source).Inc()
		fail(source, err.Error())
		a.l.Warn("sub-fetch failed",
			applogger.String("symbol", symbol),
			applogger.String("source", source),
			applogger.Error(err),
		)
	}
}

// deriveQuote computes the quote from the one-day close series. Change is
// close[last]-close[first], the upstream definition of intraday change.
func deriveQuote(daily []float64) models.Quote {
	if len(daily) == 0 {
		return models.Quote{}
	}
	first := daily[0]
	last := daily[len(daily)-1]
	q := models.Quote{
		Price:  last,
		Change: last - first,
	}
	if first != 0 {
		q.ChangePercent = q.Change / first * 100
	}
	return q
}

// mergeProfile overlays fetched fields on the defaults, keeping a default
// wherever the provider left a field empty.
func mergeProfile(def, fetched models.Profile) models.Profile {
	out := def
	if fetched.Name != "" {
		out.Name = fetched.Name
	}
	if fetched.Industry != "" {
		out.Industry = fetched.Industry
	}
	if fetched.Sector != "" {
		out.Sector = fetched.Sector
	}
	if fetched.Country != "" {
		out.Country = fetched.Country
	}
	if fetched.Website != "" {
		out.Website = fetched.Website
	}
	return out
}

func (a *StockAggregator) minimalDetails(symbol, errMsg string) *models.StockDetails {
	d := models.NewStockDetails(symbol)
	d.Sentiment = nil
	d.RiskAnalysis = nil
	d.PricePrediction = nil
	d.Error = errMsg
	return d
}
