// 离线训练职业预测模型脚本
//
// 读取 CSV 训练集，拟合随机森林与编码词表，生成模型包工件。
// API 服务启动时加载该工件；未生成时服务以纯规则模式运行。
//
// 用法: go run scripts/train_model.go [-dataset 路径] [-out 路径]
//
// storage.type 配置为 minio 时，训练完成后会把工件上传到对象存储，
// 其他实例即可在启动阶段拉取同一份模型。

package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/ml"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

func main() {
	datasetFlag := flag.String("dataset", "", "训练集 CSV 路径，默认取配置 model.dataset_path")
	outFlag := flag.String("out", "", "模型包输出路径，默认取配置 model.bundle_path")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	datasetPath := cfg.Model.DatasetPath
	if *datasetFlag != "" {
		datasetPath = *datasetFlag
	}
	if datasetPath == "" {
		datasetPath = "datasets/careers_dataset.csv"
	}

	bundlePath := cfg.Model.BundlePath
	if *outFlag != "" {
		bundlePath = *outFlag
	}
	if bundlePath == "" {
		bundlePath = "ml_model/career_predictor.json"
	}

	samples, err := ml.LoadDataset(datasetPath)
	if err != nil {
		logger.Log.Fatal("Failed to load dataset", zap.String("path", datasetPath), zap.Error(err))
	}
	logger.Log.Info("Dataset loaded", zap.String("path", datasetPath), zap.Int("samples", len(samples)))

	forestCfg := ml.DefaultForestConfig()
	if cfg.Model.Trees > 0 {
		forestCfg.Trees = cfg.Model.Trees
	}
	if cfg.Model.MaxDepth > 0 {
		forestCfg.MaxDepth = cfg.Model.MaxDepth
	}
	if cfg.Model.Seed != 0 {
		forestCfg.Seed = cfg.Model.Seed
	}

	start := time.Now()
	bundle, report, err := ml.Train(samples, forestCfg)
	if err != nil {
		logger.Log.Fatal("Training failed", zap.Error(err))
	}

	logger.Log.Info("Training finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("samples", report.Samples),
		zap.Int("train_samples", report.TrainSamples),
		zap.Int("test_samples", report.TestSamples),
		zap.Int("features", report.Features),
		zap.Int("classes", report.Classes),
		zap.Float64("accuracy", report.Accuracy))

	if err := bundle.Save(bundlePath); err != nil {
		logger.Log.Fatal("Failed to save model bundle", zap.String("path", bundlePath), zap.Error(err))
	}
	logger.Log.Info("Model bundle saved", zap.String("path", bundlePath))

	if cfg.Storage.Type == "minio" {
		uploadBundle(cfg, bundlePath)
	}

	log.Println("完成！")
}

func uploadBundle(cfg *config.Config, bundlePath string) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	data, err := os.ReadFile(bundlePath)
	if err != nil {
		logger.Log.Fatal("Failed to read model bundle", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	name := filepath.Base(bundlePath)
	url, err := storage.Upload(ctx, name, bytes.NewReader(data), int64(len(data)), "application/json")
	if err != nil {
		logger.Log.Fatal("Failed to upload model bundle", zap.Error(err))
	}
	logger.Log.Info("Model bundle uploaded", zap.String("url", url))
}
