package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"cooked-flow/internal/model"
	"cooked-flow/internal/recipe"
	"cooked-flow/internal/recipe/repository"
	"cooked-flow/pkg/ingredient"
)

// The importer reports at most this many per-record failures; past that only
// the counters grow.
const maxReportedFailures = 50

// ImportCSV streams a RecipeNLG-format CSV into the store. Each data row is
// parsed, length-capped, junk-filtered, fingerprinted and deduplicated, then
// loaded in rate-limited chunks. Every row lands in exactly one counter of
// the returned summary.
func (uc *implUseCase) ImportCSV(ctx context.Context, sc model.Scope, input recipe.ImportCSVInput) (recipe.ImportSummary, error) {
	summary := recipe.ImportSummary{BatchID: uuid.NewString()}

	reader := csv.NewReader(input.Reader)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return summary, recipe.ErrEmptyDataset
	}
	if err != nil {
		return summary, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return summary, err
	}

	if input.Purge {
		uc.l.Warnf(ctx, "ImportCSV: batch=%s purging existing recipes", summary.BatchID)
		if err := uc.limiter.Wait(ctx); err != nil {
			return summary, err
		}
		if err := uc.repo.Purge(ctx); err != nil {
			return summary, fmt.Errorf("failed to purge before import: %w", err)
		}
	}

	uc.l.Infof(ctx, "ImportCSV: batch=%s user=%s chunk_size=%d", summary.BatchID, sc.UserID, uc.chunkSize)

	var chunk []repository.CreateRecipeOptions
	var chunkRows []int

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed CSV row: count and move on
			summary.Read++
			summary.Invalid++
			continue
		}
		summary.Read++

		rec, ok := uc.parseRow(row, cols)
		if !ok {
			summary.Invalid++
			continue
		}

		fp := recipe.Fingerprint(rec.Title, rec.Ingredients, rec.Directions)
		if _, seen := uc.dedup.Get(fp); seen {
			summary.Duplicates++
			continue
		}
		uc.dedup.Add(fp, struct{}{})

		chunk = append(chunk, repository.CreateRecipeOptions{Recipe: uc.buildRecipe(rec, fp)})
		chunkRows = append(chunkRows, summary.Read)
		if len(chunk) >= uc.chunkSize {
			uc.flushChunk(ctx, chunk, chunkRows, &summary)
			chunk, chunkRows = nil, nil
		}
	}
	if len(chunk) > 0 {
		uc.flushChunk(ctx, chunk, chunkRows, &summary)
	}

	if summary.Read == 0 {
		return summary, recipe.ErrEmptyDataset
	}

	uc.l.Infof(ctx, "ImportCSV: batch=%s read=%d inserted=%d duplicates=%d invalid=%d failed=%d",
		summary.BatchID, summary.Read, summary.Inserted, summary.Duplicates, summary.Invalid, summary.Failed)
	return summary, nil
}

// columnIndexes locates the dataset columns by name; the leading unnamed
// index column of the published dataset is simply never referenced.
type columnIndexes struct {
	title, ingredients, directions, link, source int
}

func resolveColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{title: -1, ingredients: -1, directions: -1, link: -1, source: -1}
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))) {
		case "title":
			idx.title = i
		case "ingredients":
			idx.ingredients = i
		case "directions":
			idx.directions = i
		case "link":
			idx.link = i
		case "source":
			idx.source = i
		}
	}
	if idx.title < 0 || idx.ingredients < 0 || idx.directions < 0 {
		return idx, recipe.ErrMissingColumns
	}
	return idx, nil
}

// parseRow turns one CSV row into an ImportRecord. Returns false for rows
// that cannot become a recipe: blank title, undecodable lists, no usable
// ingredient lines.
func (uc *implUseCase) parseRow(row []string, cols columnIndexes) (recipe.ImportRecord, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := recipe.ImportRecord{
		Title:  truncate(cell(cols.title), recipe.MaxTitleLen),
		Link:   cell(cols.link),
		Source: cell(cols.source),
	}
	if rec.Title == "" {
		return rec, false
	}

	rawIngredients, ok := decodeList(cell(cols.ingredients))
	if !ok {
		return rec, false
	}
	for _, line := range rawIngredients {
		line = truncate(strings.TrimSpace(line), recipe.MaxRawLineLen)
		if ingredient.IsJunk(line) {
			continue
		}
		rec.Ingredients = append(rec.Ingredients, line)
	}
	if len(rec.Ingredients) == 0 {
		return rec, false
	}

	rawDirections, ok := decodeList(cell(cols.directions))
	if !ok {
		return rec, false
	}
	for _, step := range rawDirections {
		step = truncate(strings.TrimSpace(step), recipe.MaxStepLen)
		if step != "" {
			rec.Directions = append(rec.Directions, step)
		}
	}

	return rec, true
}

// decodeList decodes a JSON-encoded string list cell. A bare empty cell is an
// empty list, anything else non-JSON is a malformed row.
func decodeList(cell string) ([]string, bool) {
	if cell == "" {
		return nil, true
	}
	var list []string
	if err := json.Unmarshal([]byte(cell), &list); err != nil {
		return nil, false
	}
	return list, true
}

// buildRecipe assembles the storable entity, parsing every ingredient line.
func (uc *implUseCase) buildRecipe(rec recipe.ImportRecord, fp string) model.Recipe {
	out := model.Recipe{
		ID:             uuid.NewString(),
		Title:          rec.Title,
		CanonicalTitle: recipe.CanonicalTitle(rec.Title),
		Fingerprint:    fp,
		Source:         rec.Source,
		Link:           rec.Link,
		Directions:     rec.Directions,
		CreatedAt:      time.Now().UTC(),
	}
	for i, line := range rec.Ingredients {
		parsed := ingredient.Parse(line)
		out.Ingredients = append(out.Ingredients, model.RecipeIngredient{
			Position:    i,
			RawLine:     line,
			Quantity:    parsed.Quantity,
			Unit:        parsed.Unit,
			Name:        truncate(parsed.Name, recipe.MaxIngredientLen),
			PackageQty:  parsed.PackageQty,
			PackageUnit: parsed.PackageUnit,
		})
	}
	return out
}

// flushChunk stores one chunk: re-check fingerprints against the store, then
// bulk insert what remains. Failures mark the whole chunk failed with the
// repository reason; the run continues with the next chunk.
func (uc *implUseCase) flushChunk(ctx context.Context, chunk []repository.CreateRecipeOptions, rows []int, summary *recipe.ImportSummary) {
	fps := make([]string, len(chunk))
	for i, opt := range chunk {
		fps[i] = opt.Recipe.Fingerprint
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		uc.markFailed(chunk, rows, err, summary)
		return
	}
	existing, err := uc.repo.ExistingFingerprints(ctx, fps)
	if err != nil {
		uc.markFailed(chunk, rows, err, summary)
		return
	}

	fresh := chunk[:0]
	freshRows := rows[:0]
	for i, opt := range chunk {
		if existing[opt.Recipe.Fingerprint] {
			summary.Duplicates++
			continue
		}
		fresh = append(fresh, opt)
		freshRows = append(freshRows, rows[i])
	}
	if len(fresh) == 0 {
		return
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		uc.markFailed(fresh, freshRows, err, summary)
		return
	}
	if err := uc.repo.CreateRecipesBatch(ctx, fresh); err != nil {
		uc.l.Errorf(ctx, "ImportCSV: batch=%s chunk of %d failed: %v", summary.BatchID, len(fresh), err)
		uc.markFailed(fresh, freshRows, err, summary)
		return
	}
	summary.Inserted += len(fresh)
}

func (uc *implUseCase) markFailed(chunk []repository.CreateRecipeOptions, rows []int, err error, summary *recipe.ImportSummary) {
	summary.Failed += len(chunk)
	for _, opt := range chunk {
		// a failed record is not stored; let a later run try it again
		uc.dedup.Remove(opt.Recipe.Fingerprint)
	}
	for i, opt := range chunk {
		if len(summary.Failures) >= maxReportedFailures {
			break
		}
		summary.Failures = append(summary.Failures, recipe.FailedRecord{
			Row:    rows[i],
			Title:  opt.Recipe.Title,
			Reason: err.Error(),
		})
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
