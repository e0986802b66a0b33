package sensory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

func initOrtEnvironment(dllPath string) error {
	ortInitOnce.Do(func() {
		if dllPath != "" {
			ort.SetSharedLibraryPath(dllPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// OrtTagger runs a pretrained token-classification model through ONNX
// Runtime and maps each input word to the coarse POS tag of its first
// subword piece. Lemma and dependency labels come from the shared rule
// layer; the model is treated as a black box that only has to produce
// per-token tag logits.
type OrtTagger struct {
	cfg     TaggerConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex

	// memCache memoizes per-text results; tasters repeat phrasing often and
	// duplicate comments are retained, so identical texts recur.
	memCache map[string][]TaggedToken
}

// NewOrtTagger loads the tokenizer and opens an ONNX session.
func NewOrtTagger(cfg TaggerConfig) (*OrtTagger, error) {
	if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
		return nil, errors.New("onnx tagger requires modelPath and tokenizerPath")
	}
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = 512
	}
	if len(cfg.Labels) == 0 {
		cfg.Labels = DefaultPOSLabels()
	}
	if err := initOrtEnvironment(cfg.OrtDLL); err != nil {
		return nil, fmt.Errorf("init onnxruntime: %w", err)
	}
	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("open onnx session: %w", err)
	}
	return &OrtTagger{
		cfg:      cfg,
		tk:       tk,
		session:  session,
		memCache: make(map[string][]TaggedToken),
	}, nil
}

// Close releases the ONNX session.
func (t *OrtTagger) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.memCache = nil
	if t.session != nil {
		err := t.session.Destroy()
		t.session = nil
		return err
	}
	return nil
}

// Tag encodes text, runs the model and aligns subword predictions back to
// surface words.
func (t *OrtTagger) Tag(text string) ([]TaggedToken, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return nil, errors.New("tagger is closed")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if cached, ok := t.memCache[text]; ok {
		return cloneTagged(cached), nil
	}
	encoding, err := t.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}
	seqLen := len(encoding.Ids)
	if seqLen > t.cfg.MaxSeqLen {
		seqLen = t.cfg.MaxSeqLen
	}
	if seqLen == 0 {
		return nil, nil
	}

	ids := make([]int64, seqLen)
	mask := make([]int64, seqLen)
	for i := 0; i < seqLen; i++ {
		ids[i] = int64(encoding.Ids[i])
		mask[i] = 1
	}
	inputIDs, err := ort.NewTensor(ort.NewShape(1, int64(seqLen)), ids)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputIDs.Destroy()
	attention, err := ort.NewTensor(ort.NewShape(1, int64(seqLen)), mask)
	if err != nil {
		return nil, fmt.Errorf("create mask tensor: %w", err)
	}
	defer attention.Destroy()

	outputs := []ort.Value{nil}
	if err := t.session.Run([]ort.Value{inputIDs, attention}, outputs); err != nil {
		return nil, fmt.Errorf("run tagger model: %w", err)
	}
	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, errors.New("unexpected logits tensor type")
	}
	defer logitsTensor.Destroy()

	logits := logitsTensor.GetData()
	numLabels := len(t.cfg.Labels)
	if len(logits) < seqLen*numLabels {
		return nil, fmt.Errorf("logits shape mismatch: got %d values for %d tokens", len(logits), seqLen)
	}

	// Keep the prediction of the first subword piece of each word; special
	// tokens carry no word index and are skipped.
	words := strings.Fields(text)
	out := make([]TaggedToken, 0, len(words))
	seen := make(map[int]struct{})
	for i := 0; i < seqLen; i++ {
		wordIdx := encoding.Words[i]
		if wordIdx < 0 || wordIdx >= len(words) {
			continue
		}
		if _, dup := seen[wordIdx]; dup {
			continue
		}
		seen[wordIdx] = struct{}{}
		tag := t.cfg.Labels[argmax(logits[i*numLabels:(i+1)*numLabels])]
		surface := strings.ToLower(strings.Trim(words[wordIdx], ".,;:!?\"'()"))
		if surface == "" {
			continue
		}
		out = append(out, TaggedToken{
			Text:  surface,
			POS:   tag,
			Lemma: Lemmatize(surface),
			Dep:   depForPOS(tag),
		})
	}
	t.memCache[text] = cloneTagged(out)
	return out, nil
}

func cloneTagged(tokens []TaggedToken) []TaggedToken {
	out := make([]TaggedToken, len(tokens))
	copy(out, tokens)
	return out
}

func argmax(values []float32) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// NewTagger constructs the backend selected by the configuration.
func NewTagger(cfg TaggerConfig) (Tagger, error) {
	switch cfg.Backend {
	case "", "rules":
		return NewRuleTagger(), nil
	case "onnx":
		return NewOrtTagger(cfg)
	default:
		return nil, fmt.Errorf("unknown tagger backend %q", cfg.Backend)
	}
}
