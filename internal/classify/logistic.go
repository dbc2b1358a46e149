package classify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LogisticRegression is a binary linear classifier trained with batch
// gradient descent on the cross-entropy loss. Features are standardized
// internally; weights start at zero so training is deterministic.
type LogisticRegression struct {
	weights *mat.VecDense
	bias    float64
	mean    []float64
	std     []float64

	LearningRate float64
	Epochs       int
}

// NewLogisticRegression creates an untrained model with the given
// hyperparameters.
func NewLogisticRegression(learningRate float64, epochs int) *LogisticRegression {
	return &LogisticRegression{
		LearningRate: learningRate,
		Epochs:       epochs,
	}
}

// Fit trains the model on X (n x d) against binary labels y (0 or 1)
func (m *LogisticRegression) Fit(X *mat.Dense, y []float64) error {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return fmt.Errorf("empty design matrix")
	}
	if len(y) != n {
		return fmt.Errorf("label count %d does not match %d rows", len(y), n)
	}
	if m.LearningRate <= 0 || m.Epochs < 1 {
		return fmt.Errorf("invalid hyperparameters: lr=%g, epochs=%d", m.LearningRate, m.Epochs)
	}

	Xs := m.standardizeFit(X)
	m.weights = mat.NewVecDense(d, nil)
	m.bias = 0

	z := mat.NewVecDense(n, nil)
	diff := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(d, nil)

	for epoch := 0; epoch < m.Epochs; epoch++ {
		z.MulVec(Xs, m.weights)

		biasGrad := 0.0
		for i := 0; i < n; i++ {
			p := sigmoid(z.AtVec(i) + m.bias)
			diff.SetVec(i, p-y[i])
			biasGrad += p - y[i]
		}

		grad.MulVec(Xs.T(), diff)
		m.weights.AddScaledVec(m.weights, -m.LearningRate/float64(n), grad)
		m.bias -= m.LearningRate * biasGrad / float64(n)
	}

	return nil
}

// PredictProba returns the class-membership probability of each row
func (m *LogisticRegression) PredictProba(X *mat.Dense) ([]float64, error) {
	if m.weights == nil {
		return nil, fmt.Errorf("model is not trained")
	}
	n, d := X.Dims()
	if d != m.weights.Len() {
		return nil, fmt.Errorf("feature count %d does not match model dimension %d", d, m.weights.Len())
	}

	Xs := m.standardizeApply(X)
	z := mat.NewVecDense(n, nil)
	z.MulVec(Xs, m.weights)

	out := make([]float64, n)
	for i := range out {
		out[i] = sigmoid(z.AtVec(i) + m.bias)
	}
	return out, nil
}

// standardizeFit learns per-column mean and standard deviation and
// returns the standardized matrix. Constant columns keep std 1 so the
// division is a no-op.
func (m *LogisticRegression) standardizeFit(X *mat.Dense) *mat.Dense {
	n, d := X.Dims()
	m.mean = make([]float64, d)
	m.std = make([]float64, d)

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, X)
		m.mean[j] = stat.Mean(col, nil)
		m.std[j] = stat.StdDev(col, nil)
		if m.std[j] == 0 || math.IsNaN(m.std[j]) {
			m.std[j] = 1
		}
	}
	return m.standardizeApply(X)
}

func (m *LogisticRegression) standardizeApply(X *mat.Dense) *mat.Dense {
	n, d := X.Dims()
	Xs := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			Xs.Set(i, j, (X.At(i, j)-m.mean[j])/m.std[j])
		}
	}
	return Xs
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
