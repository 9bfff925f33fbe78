// Package client provides HTTP access to the transaction ingress service.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type TransactionClient struct {
	baseURL string
	client  *http.Client
}

func NewTransactionClient(baseURL string) *TransactionClient {
	return &TransactionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SubmitResponse is the ingress acknowledgment for an accepted transaction.
type SubmitResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// Submit posts a transaction record to the ingress service.
func (c *TransactionClient) Submit(record map[string]interface{}) (*SubmitResponse, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/transaction", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			return nil, fmt.Errorf("submit failed with status %d: %s", resp.StatusCode, errBody.Error)
		}
		return nil, fmt.Errorf("submit failed with status %d", resp.StatusCode)
	}

	var ack SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("decode acknowledgment: %w", err)
	}
	return &ack, nil
}

// Get fetches a stored transaction by id. It returns the raw record.
func (c *TransactionClient) Get(id string) (map[string]interface{}, error) {
	resp, err := c.client.Get(c.baseURL + "/transaction/" + id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("transaction %s not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get failed with status %d: %s", resp.StatusCode, string(body))
	}

	var record map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
