package workload

import "github.com/rhyrak/form1-scheduler/pkg/model"

// languageRussianMarker is the exact cell value the source workbook uses
// for Russian-medium rows (original_source/.../constants.py:
// LANGUAGE_RUSSIAN = "орыс"). Every other value, including blank, is
// treated as Kazakh — the permissive default the rest of the pipeline
// relies on for malformed cells.
const languageRussianMarker = "орыс"

// parseLanguage reads a row's language cell into the Language enum (§3).
func parseLanguage(cell string) model.Language {
	if cell == languageRussianMarker {
		return model.Russian
	}
	return model.Kazakh
}
