package authenticate_supplier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcwh/WRS-ReservationService/internal/integrations/sheetstore"
)

type fakeCredentialsLoader struct {
	records []sheetstore.CredentialRecord
	err     error
}

func (l *fakeCredentialsLoader) LoadCredentials(ctx context.Context) ([]sheetstore.CredentialRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.records, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testRecords() []sheetstore.CredentialRecord {
	return []sheetstore.CredentialRecord{
		{SupplierID: "prov-a", Secret: "secreto1", Email: "a@example.com", CCEmailsRaw: "compras@example.com;deposito@example.com"},
		{SupplierID: " prov-b ", Secret: " clave2 ", Email: "", CCEmailsRaw: ""},
	}
}

func newTestUseCase(loader *fakeCredentialsLoader) *UseCase {
	return NewUseCase(loader, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	resp, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-a", Secret: "secreto1"})
	require.NoError(t, err)

	assert.Equal(t, "prov-a", resp.SupplierID)
	assert.Equal(t, "a@example.com", resp.PrimaryEmail)
	assert.Equal(t, []string{"compras@example.com", "deposito@example.com"}, resp.CCEmails)
}

func TestExecute_TrimsInputsAndStoredValues(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	// Окружающие пробелы и во входе, и в хранимой записи
	resp, err := uc.Execute(context.Background(), &Request{SupplierID: "  prov-b ", Secret: " clave2  "})
	require.NoError(t, err)
	assert.Equal(t, "prov-b", resp.SupplierID)
}

func TestExecute_BlankEmailIsValid(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	resp, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-b", Secret: "clave2"})
	require.NoError(t, err)

	assert.Empty(t, resp.PrimaryEmail)
	assert.Empty(t, resp.CCEmails)
}

func TestExecute_SupplierNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	_, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-x", Secret: "secreto1"})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestExecute_WrongSecret(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	_, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-a", Secret: "otra"})
	assert.ErrorIs(t, err, ErrWrongSecret)
}

func TestExecute_SecretIsCaseSensitive(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	_, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-a", Secret: "Secreto1"})
	assert.ErrorIs(t, err, ErrWrongSecret)
}

func TestExecute_NotFoundTakesPriorityOverWrongSecret(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	// Неизвестный логин с чужим валидным паролем
	_, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-x", Secret: "secreto1"})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
	assert.NotErrorIs(t, err, ErrWrongSecret)
}

func TestExecute_EmptyInputs(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{records: testRecords()})

	_, err := uc.Execute(context.Background(), &Request{SupplierID: "", Secret: "secreto1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SupplierID: "prov-a", Secret: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	uc := newTestUseCase(&fakeCredentialsLoader{err: errors.New("store down")})

	_, err := uc.Execute(context.Background(), &Request{SupplierID: "prov-a", Secret: "secreto1"})
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestParseCCEmails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "semicolon separated", input: "a@x.com;b@x.com", want: []string{"a@x.com", "b@x.com"}},
		{name: "comma separated", input: "a@x.com,b@x.com", want: []string{"a@x.com", "b@x.com"}},
		{name: "mixed separators with spaces", input: " a@x.com ; b@x.com , c@x.com", want: []string{"a@x.com", "b@x.com", "c@x.com"}},
		{name: "empty string", input: "", want: []string{}},
		{name: "only separators", input: ";;,", want: []string{}},
		{name: "single address", input: "a@x.com", want: []string{"a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCCEmails(tt.input))
		})
	}
}
