package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/logger"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// detalle agrega al análisis los valores intermedios del cálculo
type detalle struct {
	*models.Analisis
	ValoresPresentes []float64 `json:"valoresPresentes"`
	TotalIngresos    float64   `json:"totalIngresos"`
	TotalEgresos     float64   `json:"totalEgresos"`
	RaicesTIR        []float64 `json:"raicesTir"` // porcentaje
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "analisis",
		Short:         "Evaluación financiera de proyectos sin conexión",
		Long:          `Calcula VAN, TIR y período de recuperación de un proyecto descrito en un archivo JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "nivel-log", "warn", "Nivel de log (debug, info, warn, error)")

	var archivo string
	var conDetalle bool

	calcularCmd := &cobra.Command{
		Use:   "calcular",
		Short: "Calcula el análisis de un proyecto",
		RunE: func(cmd *cobra.Command, args []string) error {
			zapLogger, err := logger.New(logLevel, "console", "")
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck

			f, err := os.Open(archivo)
			if err != nil {
				return fmt.Errorf("no se pudo abrir %s: %w", archivo, err)
			}
			defer f.Close()

			return calcular(f, cmd.OutOrStdout(), conDetalle, zapLogger)
		},
	}
	calcularCmd.Flags().StringVarP(&archivo, "archivo", "a", "", "Archivo JSON con el proyecto y sus flujos")
	calcularCmd.Flags().BoolVarP(&conDetalle, "detalle", "d", false, "Incluye valores presentes, totales y todas las raíces de la TIR")
	_ = calcularCmd.MarkFlagRequired("archivo")

	rootCmd.AddCommand(calcularCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// calcular lee un proyecto en JSON, aplica la convención de signos igual que
// la API y escribe el análisis en out
func calcular(in io.Reader, out io.Writer, conDetalle bool, zapLogger *zap.Logger) error {
	var proyecto models.Proyecto
	if err := json.NewDecoder(in).Decode(&proyecto); err != nil {
		return fmt.Errorf("JSON de proyecto inválido: %w", err)
	}
	for i := range proyecto.Flujos {
		if !proyecto.Flujos[i].TipoFlujo.Valid() {
			return &analysis.ValidationError{
				Campo:  "tipoFlujo",
				Motivo: fmt.Sprintf("valor %q en el flujo %s", proyecto.Flujos[i].TipoFlujo, proyecto.Flujos[i].ID),
			}
		}
		proyecto.Flujos[i].NormalizarSignos()
	}

	solver := analysis.NewIRRSolver(analysis.DefaultIRRSolverConfig())
	analisis, err := analysis.NewService(zapLogger, solver).Compute(&proyecto)
	if err != nil {
		return err
	}

	var resultado interface{} = analisis
	if conDetalle {
		d, err := armarDetalle(&proyecto, analisis, solver)
		if err != nil {
			return err
		}
		resultado = d
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resultado)
}

func armarDetalle(proyecto *models.Proyecto, analisis *models.Analisis, solver *analysis.IRRSolver) (*detalle, error) {
	valoresPresentes, err := analysis.PresentValues(analisis.FlujosCajaNetos, proyecto.TasaDescuento/100)
	if err != nil {
		return nil, err
	}
	tir, err := solver.Solve(analisis.FlujosCajaNetos)
	if err != nil {
		return nil, err
	}

	raices := make([]float64, len(tir.Roots))
	for i, r := range tir.Roots {
		raices[i] = r * 100
	}

	return &detalle{
		Analisis:         analisis,
		ValoresPresentes: valoresPresentes,
		TotalIngresos:    total(proyecto.Ingresos()),
		TotalEgresos:     total(proyecto.Egresos()),
		RaicesTIR:        raices,
	}, nil
}

func total(flujos []models.FlujoFinanciero) float64 {
	suma := decimal.Zero
	for _, f := range flujos {
		for _, v := range f.ValoresAnuales {
			suma = suma.Add(decimal.NewFromFloat(v))
		}
	}
	return suma.InexactFloat64()
}
