package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
	"TabiPlan-App/internal/domain/service"
	"TabiPlan-App/internal/infrastructure/database"
	fsinfra "TabiPlan-App/internal/infrastructure/firestore"
	"TabiPlan-App/internal/infrastructure/maps"
	repoimpl "TabiPlan-App/internal/repository"
	"TabiPlan-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" || supabaseAnonKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// カタログと外部検索の組み立て
	placesRepo := repoimpl.NewSupabasePlacesRepository(supabaseClient)
	searchProvider := maps.NewGooglePlacesProvider(os.Getenv("GOOGLE_MAPS_API_KEY"))
	fallbackService := service.NewPlaceFallbackService(searchProvider, placesRepo)
	planService := service.NewPlanSuggestionService(placesRepo, fallbackService)

	// プラン保存（Firestoreはプロジェクト未設定なら保存なしで続行）
	planUseCase := usecase.NewPlanUseCase(planService, buildTripPlanRepo(ctx))

	req := requestFromEnv()
	resp, err := planUseCase.GeneratePlan(ctx, req)
	if err != nil {
		log.Fatalf("プラン生成失敗: %v", err)
	}

	printSchedule(resp.Plan)
}

// buildTripPlanRepo はFirestoreのプラン保存リポジトリを組み立てる（未設定ならnil）
func buildTripPlanRepo(ctx context.Context) repository.TripPlanRepository {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	if projectID == "" {
		log.Printf("⚠️ GOOGLE_CLOUD_PROJECT_IDが未設定のためプラン保存は無効")
		return nil
	}

	client, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Printf("⚠️ Firestoreクライアント初期化失敗、プラン保存は無効: %v", err)
		return nil
	}

	return repoimpl.NewFirestoreTripPlanRepository(client.GetClient())
}

// requestFromEnv は環境変数からデモ用のプラン生成リクエストを組み立てる
func requestFromEnv() *model.PlanRequest {
	destination := envOr("PLAN_DESTINATION", "Paris")
	startDate := envOr("PLAN_START_DATE", time.Now().Format("2006-01-02"))
	endDate := envOr("PLAN_END_DATE", time.Now().AddDate(0, 0, 2).Format("2006-01-02"))

	var interests []string
	if raw := os.Getenv("PLAN_INTERESTS"); raw != "" {
		for _, interest := range strings.Split(raw, ",") {
			interests = append(interests, strings.TrimSpace(interest))
		}
	}

	return &model.PlanRequest{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Interests:   interests,
		Pace:        envOr("PLAN_PACE", model.PaceStandard),
		UseExternal: os.Getenv("PLAN_USE_EXTERNAL") == "true",
		CountryMode: os.Getenv("PLAN_COUNTRY_MODE") == "true",
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// printSchedule は生成したプランを標準出力に表示する
func printSchedule(plan *model.TripPlan) {
	fmt.Printf("\n📅 %s (%s〜%s)\n", plan.Name, plan.StartDate, plan.EndDate)
	for _, day := range plan.Schedule.Days {
		fmt.Printf("\n--- %s ---\n", day.Date)
		if len(day.Items) == 0 {
			fmt.Println("  (予定なし)")
			continue
		}
		for _, item := range day.Items {
			fmt.Printf("  %s〜%s %s [%s]\n", item.StartTime, item.EndTime, item.Title, item.Type)
		}
	}
}
