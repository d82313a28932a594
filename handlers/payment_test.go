package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIniciarPagamentoEMIS(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/iniciar-pagamento", gin.H{
		"plano":  "Básico",
		"valor":  5000,
		"moeda":  "AKZ",
		"metodo": "EMIS",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Sucesso    bool   `json:"sucesso"`
		Referencia string `json:"referencia"`
		CodigoEmis string `json:"codigo_emis"`
		Instrucoes string `json:"instrucoes"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Sucesso)
	assert.True(t, strings.HasPrefix(resp.Referencia, "EMP"), resp.Referencia)
	assert.Equal(t, resp.Referencia, resp.CodigoEmis)
	assert.Contains(t, resp.Instrucoes, resp.Referencia)
}

func TestIniciarPagamentoMulticaixa(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/iniciar-pagamento", gin.H{
		"plano":  "Profissional",
		"valor":  10000,
		"moeda":  "AKZ",
		"metodo": "Multicaixa Express",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Sucesso    bool   `json:"sucesso"`
		Referencia string `json:"referencia"`
		Entidade   string `json:"entidade"`
		Instrucoes string `json:"instrucoes"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Sucesso)
	assert.Equal(t, "99999", resp.Entidade)
	assert.Contains(t, resp.Instrucoes, "99999")
}

func TestIniciarPagamentoReferenciasUnicas(t *testing.T) {
	r, _ := newTestServer(t)

	vistas := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := criarPagamento(t, r, "Básico", 5000, "AKZ", "EMIS")
		require.False(t, vistas[ref], "referência repetida: %s", ref)
		vistas[ref] = true
	}
}

func TestIniciarPagamentoValidacao(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		nome string
		body gin.H
	}{
		{"sem plano", gin.H{"valor": 5000, "moeda": "AKZ", "metodo": "EMIS"}},
		{"valor zero", gin.H{"plano": "Básico", "valor": 0, "moeda": "AKZ", "metodo": "EMIS"}},
		{"valor negativo", gin.H{"plano": "Básico", "valor": -10, "moeda": "AKZ", "metodo": "EMIS"}},
		{"moeda desconhecida", gin.H{"plano": "Básico", "valor": 5000, "moeda": "USD", "metodo": "EMIS"}},
		{"método desconhecido", gin.H{"plano": "Básico", "valor": 5000, "moeda": "AKZ", "metodo": "Paypal"}},
	}
	for _, tc := range tests {
		t.Run(tc.nome, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/iniciar-pagamento", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"sucesso":false`)
		})
	}
}

func enviarComprovativo(t *testing.T, r *gin.Engine, referencia, filename string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("referencia", referencia))
	fw, err := mw.CreateFormFile("comprovativo", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-receipt-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/pagamento/comprovativo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEnviarComprovativo(t *testing.T) {
	r, _ := newTestServer(t)
	ref := criarPagamento(t, r, "Básico", 5000, "AKZ", "EMIS")

	w := enviarComprovativo(t, r, ref, "recibo.jpg")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Sucesso   bool `json:"sucesso"`
		Pagamento struct {
			Status       string `json:"status"`
			Comprovativo string `json:"comprovativo"`
		} `json:"pagamento"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Sucesso)
	assert.Equal(t, "pendente", resp.Pagamento.Status, "comprovativo não confirma o pagamento")
	assert.Equal(t, "recibo.jpg", resp.Pagamento.Comprovativo)
}

func TestEnviarComprovativoDesconhecido(t *testing.T) {
	r, _ := newTestServer(t)

	w := enviarComprovativo(t, r, "EMP00000000XXXX", "recibo.jpg")
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestEnviarComprovativoAposConfirmacao(t *testing.T) {
	r, _ := newTestServer(t)
	ref := criarPagamento(t, r, "Básico", 5000, "AKZ", "EMIS")
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/aprovar-pagamento", gin.H{"referencia": ref}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = enviarComprovativo(t, r, ref, "tarde.jpg")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}
