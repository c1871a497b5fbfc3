// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testNote(id int64, title string) models.Note {
	return models.Note{ID: id, Title: title, CreatedAt: createdAt, UpdatedAt: createdAt}
}

func strPtr(s string) *string {
	return &s
}

// ─────────────────────────────────────────────
// list / retrieve
// ─────────────────────────────────────────────

func TestListNotes(t *testing.T) {
	for _, target := range []string{"/api/notes/", "/api/notes"} {
		t.Run(target, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.notes.EXPECT().List(gomock.Any()).Return([]models.Note{testNote(1, "a"), testNote(2, "b")}, nil)

			rec := serve(router, http.MethodGet, target, "", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got []models.Note
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, "b", got[1].Title)
		})
	}
}

func TestListNotes_Empty(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().List(gomock.Any()).Return([]models.Note{}, nil)

	rec := serve(router, http.MethodGet, "/api/notes/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListNotes_StorageFailure(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().List(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rec := serve(router, http.MethodGet, "/api/notes/", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"A server error occurred."}`, rec.Body.String())
}

func TestRetrieveNote(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Get(gomock.Any(), int64(3)).Return(testNote(3, "three"), nil)

	rec := serve(router, http.MethodGet, "/api/notes/3/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 3,
		"title": "three",
		"description": "",
		"created_at": "2026-03-01T12:00:00Z",
		"updated_at": "2026-03-01T12:00:00Z"
	}`, rec.Body.String())
}

func TestRetrieveNote_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Get(gomock.Any(), int64(404)).Return(models.Note{}, store.ErrNoteNotFound)

	rec := serve(router, http.MethodGet, "/api/notes/404/", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestRetrieveNote_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		t.Run(id, func(t *testing.T) {
			// no expectations: the service must not be called
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodGet, "/api/notes/"+id+"/", "", "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
		})
	}
}

func TestHead(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Get(gomock.Any(), int64(1)).Return(testNote(1, "a"), nil)

	rec := serve(router, http.MethodHead, "/api/notes/1/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptions(t *testing.T) {
	tests := []struct {
		target    string
		wantAllow string
		wantName  string
	}{
		{target: "/api/notes/", wantAllow: noteListAllowedMethods, wantName: "Note List"},
		{target: "/api/notes/5/", wantAllow: noteDetailAllowedMethods, wantName: "Note Instance"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodOptions, tt.target, "", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.Contains(t, rec.Body.String(), tt.wantName)
		})
	}
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateNotes_Single(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), models.NoteInput{Title: "hello", Description: "world"}).
		Return([]models.Note{testNote(7, "hello")}, nil)

	// read-only fields are ignored
	rec := serve(router, http.MethodPost, "/api/notes/", `{"id": 99, "title": "hello", "description": "world"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/notes/7/", rec.Header().Get("Location"))

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestCreateNotes_Batch(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), models.NoteInput{Title: "a"}, models.NoteInput{Title: "b", Description: "d"}).
		Return([]models.Note{testNote(1, "a"), testNote(2, "b")}, nil)

	rec := serve(router, http.MethodPost, "/api/notes/", ` [{"title": "a"}, {"title": "b", "description": "d"}]`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestCreateNotes_EmptyBatch(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any()).Return([]models.Note{}, nil)

	rec := serve(router, http.MethodPost, "/api/notes/", `[]`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateNotes_BatchWithNonObjectElement_NothingStored(t *testing.T) {
	// no Create expectation: a call fails the test
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/notes/", `[{"title": "ok"}, "text", 5, null]`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[
		{},
		{"non_field_errors": ["Invalid data. Expected a dictionary, but got str."]},
		{"non_field_errors": ["Invalid data. Expected a dictionary, but got int."]},
		{"non_field_errors": ["Invalid data. Expected a dictionary, but got NoneType."]}
	]`, rec.Body.String())
}

func TestCreateNotes_BatchValidationErrors(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, validators.BatchErrors{{}, {"title": {"This field may not be blank."}}})

	rec := serve(router, http.MethodPost, "/api/notes/", `[{"title": "a"}, {"title": "   "}]`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{}, {"title": ["This field may not be blank."]}]`, rec.Body.String())
}

func TestCreateNotes_BatchDecodeFailure_ReportsFieldErrorsOfOtherElements(t *testing.T) {
	// no Create expectation: a call fails the test
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/notes/", `[{"title": "ok"}, {"title": ""}, 5]`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[
		{},
		{"title": ["This field may not be blank."]},
		{"non_field_errors": ["Invalid data. Expected a dictionary, but got int."]}
	]`, rec.Body.String())
}

func TestCreateNotes_BatchPresenceErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `[{"description": "` + strings.Repeat("a", 10001) + `"}, {"title": null}, {"title": 5, "description": null}]`
	rec := serve(router, http.MethodPost, "/api/notes/", body, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[
		{"title": ["This field is required."], "description": ["Ensure this field has no more than 10000 characters."]},
		{"title": ["This field may not be null."]},
		{"title": ["Not a valid string."], "description": ["This field may not be null."]}
	]`, rec.Body.String())
}

func TestCreateNotes_SingleElementBatchStillAnsweredWithList(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, validators.FieldErrors{"title": {"This field may not be blank."}})

	rec := serve(router, http.MethodPost, "/api/notes/", `[{"title": "  "}]`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"title": ["This field may not be blank."]}]`, rec.Body.String())
}

func TestCreateNotes_SingleValidationError(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), models.NoteInput{Title: ""}).
		Return(nil, validators.FieldErrors{"title": {"This field may not be blank."}})

	rec := serve(router, http.MethodPost, "/api/notes/", `{"title": ""}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"title": ["This field may not be blank."]}`, rec.Body.String())
}

func TestCreateNotes_MissingAndNullFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty object", body: `{}`, want: `{"title": ["This field is required."]}`},
		{name: "empty body", body: ``, want: `{"title": ["This field is required."]}`},
		{name: "null title", body: `{"title": null}`, want: `{"title": ["This field may not be null."]}`},
		{
			name: "null description",
			body: `{"title": "x", "description": null}`,
			want: `{"description": ["This field may not be null."]}`,
		},
		{
			name: "missing title and too long description",
			body: `{"description": "` + strings.Repeat("a", 10001) + `"}`,
			want: `{"title": ["This field is required."], "description": ["Ensure this field has no more than 10000 characters."]}`,
		},
		{
			name: "wrong title type and too long description",
			body: `{"title": 5, "description": "` + strings.Repeat("a", 10001) + `"}`,
			want: `{"title": ["Not a valid string."], "description": ["Ensure this field has no more than 10000 characters."]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Create expectation: a call fails the test
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodPost, "/api/notes/", tt.body, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestCreateNotes_InvalidBodies(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "string", body: `"note"`, contains: "Expected a dictionary, but got str."},
		{name: "bool", body: `true`, contains: "Expected a dictionary, but got bool."},
		{name: "float", body: `1.5`, contains: "Expected a dictionary, but got float."},
		{name: "truncated object", body: `{"title": `, contains: "JSON parse error"},
		{name: "truncated list", body: `[{"title": "a"}`, contains: "JSON parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodPost, "/api/notes/", tt.body, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string][]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Len(t, body[validators.NonFieldErrorsKey], 1)
			assert.Contains(t, body[validators.NonFieldErrorsKey][0], tt.contains)
		})
	}
}

func TestCreateNotes_WrongFieldType(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/notes/", `{"title": 5}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"title": ["Not a valid string."]}`, rec.Body.String())
}

func TestCreateNotes_RejectedByStorage(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, store.ErrNoteRejected)

	rec := serve(router, http.MethodPost, "/api/notes/", `{"title": "x"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid data."}`, rec.Body.String())
}

func TestCreateNotes_AllowedForEveryCaller(t *testing.T) {
	for _, token := range []string{"", userToken, staffToken} {
		router, mocks := newTestRouter(t)
		mocks.notes.EXPECT().Create(gomock.Any(), gomock.Any()).Return([]models.Note{testNote(1, "x")}, nil)

		rec := serve(router, http.MethodPost, "/api/notes/", `{"title": "x"}`, token)

		assert.Equal(t, http.StatusCreated, rec.Code, "token %q", token)
	}
}

// ─────────────────────────────────────────────
// replace / patch / delete
// ─────────────────────────────────────────────

func TestModifyingMethods_DeniedForNonStaff(t *testing.T) {
	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodPut, body: `{"title": "x"}`},
		{method: http.MethodPatch, body: `{"title": "x"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		for _, token := range []string{"", userToken} {
			t.Run(tt.method+" "+token, func(t *testing.T) {
				// no note service expectations: the note must stay untouched
				router, _ := newTestRouter(t)

				rec := serve(router, tt.method, "/api/notes/1/", tt.body, token)

				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.JSONEq(t, `{"detail":"You do not have permission to perform this action."}`, rec.Body.String())
			})
		}
	}
}

func TestDeleteNote_DeniedBeforeNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodDelete, "/api/notes/12345/", "", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReplaceNote(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Replace(gomock.Any(), int64(4), models.NoteInput{Title: "new"}).
		Return(testNote(4, "new"), nil)

	rec := serve(router, http.MethodPut, "/api/notes/4/", `{"title": "new"}`, staffToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"new"`)
}

func TestReplaceNote_ValidationError(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Replace(gomock.Any(), int64(4), gomock.Any()).
		Return(models.Note{}, validators.FieldErrors{"title": {"Ensure this field has no more than 255 characters."}})

	rec := serve(router, http.MethodPut, "/api/notes/4/", `{"title": "long"}`, staffToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"title": ["Ensure this field has no more than 255 characters."]}`, rec.Body.String())
}

func TestReplaceNote_MissingAndNullFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing title", body: `{"description": "d"}`, want: `{"title": ["This field is required."]}`},
		{name: "null title", body: `{"title": null}`, want: `{"title": ["This field may not be null."]}`},
		{name: "null description", body: `{"title": "x", "description": null}`, want: `{"description": ["This field may not be null."]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Replace expectation: a call fails the test
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodPut, "/api/notes/4/", tt.body, staffToken)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestReplaceNote_ListBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPut, "/api/notes/4/", `[{"title": "x"}]`, staffToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"non_field_errors": ["Invalid data. Expected a dictionary, but got list."]}`, rec.Body.String())
}

func TestReplaceNote_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Replace(gomock.Any(), int64(8), gomock.Any()).Return(models.Note{}, store.ErrNoteNotFound)

	rec := serve(router, http.MethodPut, "/api/notes/8/", `{"title": "x"}`, staffToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchNote_OnlyProvidedFields(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Patch(gomock.Any(), int64(2), models.NoteUpdate{Description: strPtr("updated")}).
		Return(models.Note{ID: 2, Title: "kept", Description: "updated"}, nil)

	rec := serve(router, http.MethodPatch, "/api/notes/2", `{"description": "updated"}`, staffToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"kept"`)
}

func TestPatchNote_NullFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "null title", body: `{"title": null}`, want: `{"title": ["This field may not be null."]}`},
		{name: "null description", body: `{"description": null}`, want: `{"description": ["This field may not be null."]}`},
		{
			name: "null title next to an empty description",
			body: `{"title": null, "description": ""}`,
			want: `{"title": ["This field may not be null."]}`,
		},
		{
			name: "null description and blank title",
			body: `{"title": " ", "description": null}`,
			want: `{"title": ["This field may not be blank."], "description": ["This field may not be null."]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Patch expectation: a call fails the test
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodPatch, "/api/notes/2/", tt.body, staffToken)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestPatchNote_EmptyObjectAccepted(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Patch(gomock.Any(), int64(2), models.NoteUpdate{}).
		Return(testNote(2, "kept"), nil)

	rec := serve(router, http.MethodPatch, "/api/notes/2/", `{}`, staffToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteNote(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)

	rec := serve(router, http.MethodDelete, "/api/notes/6/", "", staffToken)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteNote_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notes.EXPECT().Delete(gomock.Any(), int64(6)).Return(store.ErrNoteNotFound)

	rec := serve(router, http.MethodDelete, "/api/notes/6/", "", staffToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodDelete, "/api/notes/", "", staffToken)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method \"DELETE\" not allowed."}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// errors mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "field errors", err: validators.FieldErrors{"title": {"x"}}, want: http.StatusBadRequest},
		{name: "not found wrapped", err: errors.Join(errors.New("ctx"), store.ErrNoteNotFound), want: http.StatusNotFound},
		{name: "rejected", err: store.ErrNoteRejected, want: http.StatusBadRequest},
		{name: "invalid id", err: ErrInvalidNoteID, want: http.StatusNotFound},
		{name: "too large", err: ErrRequestBodyTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "sql", err: store.ErrScanningRows, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestJSONTypeName(t *testing.T) {
	assert.Equal(t, "list", jsonTypeName([]byte(" [1]")))
	assert.Equal(t, "str", jsonTypeName([]byte(`"x"`)))
	assert.Equal(t, "int", jsonTypeName([]byte(`-12`)))
	assert.Equal(t, "float", jsonTypeName([]byte(`1e3`)))
	assert.Equal(t, "bool", jsonTypeName([]byte(`false`)))
	assert.Equal(t, "NoneType", jsonTypeName([]byte(`null`)))
}
