package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadConfigsEnabledFilter(t *testing.T) {
	path := writeFile(t, "publishers.yaml", `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: HTTP
    http:
      url: " https://example.com/2 "
  - id: sqs
    type: queue
    queue:
      provider: aws_sqs
      aws_sqs:
        queue_url: https://sqs.ap-south-1.amazonaws.com/123/headlines
        region: ap-south-1
        access_key_id: AKIA
        secret_access_key: secret
`)

	cfgs, err := LoadConfigs(path)
	if err != nil {
		t.Fatalf("LoadConfigs: %v", err)
	}
	if len(cfgs) != 2 || cfgs[0].ID != "http2" || cfgs[1].ID != "sqs" {
		t.Fatalf("unexpected enabled publishers %#v", cfgs)
	}
	if cfgs[0].Type != TypeHTTP || cfgs[0].HTTP.URL != "https://example.com/2" {
		t.Fatalf("http entry not normalized: %#v", cfgs[0].HTTP)
	}
	if cfgs[0].HTTP.Method != httpDefaultMethod || cfgs[0].HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("http defaults not applied: %#v", cfgs[0].HTTP)
	}
	if cfgs[1].Queue.SQS.AccessKeyID != "AKIA" {
		t.Fatalf("inline aws credentials not decoded: %#v", cfgs[1].Queue.SQS)
	}
}

func TestLoadConfigsJSON(t *testing.T) {
	path := writeFile(t, "publishers.json", `{"publishers":[{"id":"topic","type":"queue","queue":{"provider":"gcp_pubsub","gcp_pubsub":{"project_id":"p","topic":"t"}}}]}`)

	cfgs, err := LoadConfigs(path)
	if err != nil {
		t.Fatalf("LoadConfigs: %v", err)
	}
	if len(cfgs) != 1 || cfgs[0].Queue.GCP.Topic != "t" {
		t.Fatalf("unexpected publishers %#v", cfgs)
	}
}

func TestLoadConfigsRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "publishers.yaml", `
publishers:
  - id: dup
    type: http
    http: {url: https://a.example}
  - id: dup
    type: http
    http: {url: https://b.example}
`)
	if _, err := LoadConfigs(path); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	cases := map[string]PublisherConfig{
		"missing id":       {Type: TypeHTTP, HTTP: &HTTPPublisherConfig{URL: "u"}},
		"missing http":     {ID: "h", Type: TypeHTTP},
		"missing queue":    {ID: "q", Type: TypeQueue},
		"unknown provider": {ID: "q", Type: TypeQueue, Queue: &QueueConfig{Provider: "azure"}},
		"sns without arn":  {ID: "q", Type: TypeQueue, Queue: &QueueConfig{Provider: QueueProviderAWSSNS, SNS: &AWSSNSPublisherConfig{Region: "r"}}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := validatePublisherConfig(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
