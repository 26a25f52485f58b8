package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/audittags/internal/discovery"
)

const (
	contractsDirectoryName          = "contracts"
	librariesDirectoryName          = "libraries"
	scriptsDirectoryName            = "scripts"
	tokenContractFileName           = "Token.sol"
	vaultContractFileName           = "Vault.sol"
	mathLibraryFileName             = "Math.sol"
	deployScriptFileName            = "deploy.js"
	readmeFileName                  = "README.md"
	jsonReportFileName              = "audit_tag_report.json"
	markdownReportFileName          = "audit_tag_report.md"
	collectorExecutableFileName     = "collector.js"
	missingDirectoryName            = "missing"
	sourceFilePermissions           = 0o644
	sourceDirectoryPermissions      = 0o755
	defaultExtensionsSubtestTitle   = "defaultExtensionsSkipReportsAndExcludedFiles"
	undottedExtensionsSubtestTitle  = "extensionsWithoutLeadingDot"
	singleExtensionSubtestTitle     = "singleExtension"
	unreadableDirectorySubtestTitle = "unreadableDirectoryAbortsWalk"
	linkedDirectoryName             = "vendored.sol"
	linkedFileName                  = "Alias.sol"
	linkedTargetFileName            = "Inner.sol"
)

type fileDefinition struct {
	pathSegments []string
}

func (definition fileDefinition) path(rootDirectory string) string {
	return filepath.Join(append([]string{rootDirectory}, definition.pathSegments...)...)
}

var repositoryLayout = []fileDefinition{
	{pathSegments: []string{contractsDirectoryName, tokenContractFileName}},
	{pathSegments: []string{contractsDirectoryName, vaultContractFileName}},
	{pathSegments: []string{contractsDirectoryName, librariesDirectoryName, mathLibraryFileName}},
	{pathSegments: []string{scriptsDirectoryName, deployScriptFileName}},
	{pathSegments: []string{scriptsDirectoryName, collectorExecutableFileName}},
	{pathSegments: []string{readmeFileName}},
	{pathSegments: []string{jsonReportFileName}},
	{pathSegments: []string{markdownReportFileName}},
}

func materializeRepository(testInstance *testing.T) string {
	testInstance.Helper()

	rootDirectory := testInstance.TempDir()
	for _, definition := range repositoryLayout {
		filePath := definition.path(rootDirectory)
		require.NoError(testInstance, os.MkdirAll(filepath.Dir(filePath), sourceDirectoryPermissions))
		require.NoError(testInstance, os.WriteFile(filePath, []byte("// source\n"), sourceFilePermissions))
	}
	return rootDirectory
}

func TestFilesystemFileDiscovererDiscoverFiles(testInstance *testing.T) {
	testScenarios := []struct {
		title             string
		extensions        []string
		excludedFileNames []string
		expectedFiles     []fileDefinition
	}{
		{
			title:             defaultExtensionsSubtestTitle,
			extensions:        []string{".sol", ".js"},
			excludedFileNames: []string{collectorExecutableFileName},
			expectedFiles: []fileDefinition{
				{pathSegments: []string{contractsDirectoryName, tokenContractFileName}},
				{pathSegments: []string{contractsDirectoryName, vaultContractFileName}},
				{pathSegments: []string{contractsDirectoryName, librariesDirectoryName, mathLibraryFileName}},
				{pathSegments: []string{scriptsDirectoryName, deployScriptFileName}},
			},
		},
		{
			title:      undottedExtensionsSubtestTitle,
			extensions: []string{" sol ", "js"},
			expectedFiles: []fileDefinition{
				{pathSegments: []string{contractsDirectoryName, tokenContractFileName}},
				{pathSegments: []string{contractsDirectoryName, vaultContractFileName}},
				{pathSegments: []string{contractsDirectoryName, librariesDirectoryName, mathLibraryFileName}},
				{pathSegments: []string{scriptsDirectoryName, collectorExecutableFileName}},
				{pathSegments: []string{scriptsDirectoryName, deployScriptFileName}},
			},
		},
		{
			title:      singleExtensionSubtestTitle,
			extensions: []string{".js"},
			expectedFiles: []fileDefinition{
				{pathSegments: []string{scriptsDirectoryName, collectorExecutableFileName}},
				{pathSegments: []string{scriptsDirectoryName, deployScriptFileName}},
			},
		},
	}

	for _, testScenario := range testScenarios {
		testInstance.Run(testScenario.title, func(testInstance *testing.T) {
			rootDirectory := materializeRepository(testInstance)

			discoverer := discovery.NewFilesystemFileDiscoverer(testScenario.extensions, testScenario.excludedFileNames)
			discoveredFiles, discoveryError := discoverer.DiscoverFiles(rootDirectory)
			require.NoError(testInstance, discoveryError)

			expectedPaths := make([]string, 0, len(testScenario.expectedFiles))
			for _, definition := range testScenario.expectedFiles {
				expectedPaths = append(expectedPaths, definition.path(rootDirectory))
			}
			require.Equal(testInstance, expectedPaths, discoveredFiles)
		})
	}
}

func TestFilesystemFileDiscovererMissingRootFails(testInstance *testing.T) {
	discoverer := discovery.NewFilesystemFileDiscoverer([]string{".sol"}, nil)

	discoveredFiles, discoveryError := discoverer.DiscoverFiles(filepath.Join(testInstance.TempDir(), missingDirectoryName))
	require.Error(testInstance, discoveryError)
	require.Nil(testInstance, discoveredFiles)
}

func TestFilesystemFileDiscovererUnreadableDirectoryFails(testInstance *testing.T) {
	if os.Geteuid() == 0 {
		testInstance.Skip("directory permissions are not enforced for root")
	}

	testInstance.Run(unreadableDirectorySubtestTitle, func(testInstance *testing.T) {
		rootDirectory := materializeRepository(testInstance)
		lockedDirectory := filepath.Join(rootDirectory, contractsDirectoryName)
		require.NoError(testInstance, os.Chmod(lockedDirectory, 0o000))
		testInstance.Cleanup(func() {
			_ = os.Chmod(lockedDirectory, sourceDirectoryPermissions)
		})

		discoverer := discovery.NewFilesystemFileDiscoverer([]string{".sol", ".js"}, nil)
		_, discoveryError := discoverer.DiscoverFiles(rootDirectory)
		require.Error(testInstance, discoveryError)
	})
}

func TestFilesystemFileDiscovererSkipsDirectoryLinks(testInstance *testing.T) {
	rootDirectory := materializeRepository(testInstance)

	externalDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(externalDirectory, linkedTargetFileName), []byte("// vendored\n"), sourceFilePermissions))

	linkedDirectoryPath := filepath.Join(rootDirectory, contractsDirectoryName, linkedDirectoryName)
	if linkError := os.Symlink(externalDirectory, linkedDirectoryPath); linkError != nil {
		testInstance.Skipf("symbolic links unavailable: %v", linkError)
	}
	linkedFilePath := filepath.Join(rootDirectory, contractsDirectoryName, linkedFileName)
	require.NoError(testInstance, os.Symlink(filepath.Join(rootDirectory, contractsDirectoryName, tokenContractFileName), linkedFilePath))

	discoverer := discovery.NewFilesystemFileDiscoverer([]string{".sol"}, nil)
	discoveredFiles, discoveryError := discoverer.DiscoverFiles(rootDirectory)
	require.NoError(testInstance, discoveryError)

	require.NotContains(testInstance, discoveredFiles, linkedDirectoryPath)
	require.NotContains(testInstance, discoveredFiles, filepath.Join(linkedDirectoryPath, linkedTargetFileName))
	require.Contains(testInstance, discoveredFiles, linkedFilePath)
	require.Len(testInstance, discoveredFiles, 4)
}
