package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		wantErr  bool
	}{
		{
			name:     "Valid finance question",
			question: Question{QID: 1, Category: CategoryFinance, Query: "revenue growth", Source: []int{1, 2, 3}},
			wantErr:  false,
		},
		{
			name:     "Valid faq question",
			question: Question{QID: 2, Category: CategoryFAQ, Query: "how to open an account", Source: []int{101}},
			wantErr:  false,
		},
		{
			name:     "Unknown category",
			question: Question{QID: 3, Category: "legal", Query: "anything", Source: []int{1}},
			wantErr:  true,
		},
		{
			name:     "Empty query",
			question: Question{QID: 4, Category: CategoryInsurance, Query: "", Source: []int{1}},
			wantErr:  true,
		},
		{
			name:     "Empty candidate set",
			question: Question{QID: 5, Category: CategoryFinance, Query: "q", Source: []int{}},
			wantErr:  true,
		},
		{
			name:     "Missing candidate set",
			question: Question{QID: 6, Category: CategoryFinance, Query: "q"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
