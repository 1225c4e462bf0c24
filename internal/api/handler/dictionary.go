package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/trie"
)

// DictionaryHandler handles dictionary lookups
type DictionaryHandler struct {
	dictionaryService *dictionary.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaryService *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
	}
}

// List handles GET /api/v1/dictionaries
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	defaultName := h.dictionaryService.DefaultName()
	response.JSON(w, http.StatusOK, response.DictionaryList{
		Default:       defaultName,
		MinWordLength: h.dictionaryService.MinWordLength(),
		Dictionaries: lo.Map(h.dictionaryService.Names(), func(name string, _ int) response.Dictionary {
			return response.Dictionary{
				Name:      name,
				WordCount: h.dictionaryService.WordCount(name),
				Default:   name == defaultName,
			}
		}),
	})
}

// CheckWord handles GET /api/v1/words/{word}?dictionary=name
func (h *DictionaryHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	word, err := trie.Normalize(mux.Vars(r)["word"])
	if err != nil {
		WriteError(w, err)
		return
	}

	name := r.URL.Query().Get("dictionary")
	if _, err := h.dictionaryService.Dictionary(name); err != nil {
		WriteError(w, err)
		return
	}
	if name == "" {
		name = h.dictionaryService.DefaultName()
	}

	valid := h.dictionaryService.IsValidWord(name, word)
	response.JSON(w, http.StatusOK, response.WordCheck{
		Word:       word,
		Dictionary: name,
		Valid:      valid,
		Points:     lo.Ternary(valid, scoring.PointValue(len(word)), 0),
	})
}
